package main

import (
	"os"

	"github.com/iamNilotpal/zlib/config"
	"github.com/iamNilotpal/zlib/internal/adapters/deflate"
	"github.com/iamNilotpal/zlib/internal/core/services/envelope"
	"github.com/iamNilotpal/zlib/pkg/errors"
	"github.com/iamNilotpal/zlib/pkg/logger"
)

func main() {
	logger := logger.New("zlib-demo")
	defer logger.Sync()

	cfg := config.DefaultConfig()
	if len(os.Args) > 1 {
		loaded, err := config.LoadConfig(os.Args[1])
		if err != nil {
			logger.Infow("load config error", "path", os.Args[1], "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	codec, err := deflate.New(deflate.Options{BufferSize: cfg.Codec.BufferSize})
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Infow("create codec error", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Infow("create codec error", "error", err)
		}
		os.Exit(1)
	}

	zlib := envelope.New(codec)
	input := []byte(`stream := zlib.Compress([]byte("This is the first envelope"), level)`)

	stream := zlib.Compress(input, cfg.Level())
	logger.Infow("compressed", "level", cfg.Level(), "in", len(input), "out", len(stream))

	data, err := zlib.Decompress(stream)
	if err != nil {
		if decodeErr := errors.AsDecodeError(err); decodeErr != nil {
			logger.Infow("decompress error", "kind", decodeErr.Kind, "error", decodeErr)
		} else {
			logger.Infow("decompress error", "error", err)
		}
		os.Exit(1)
	}

	logger.Infow("round trip complete", "data", string(data))
}
