package utils

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"

	"lightlock/pkg/logger"
)

// LoadEnv reads .env files into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			logger.LogWarn("Could not load %s: %v", f, err)
		}
	}
}
