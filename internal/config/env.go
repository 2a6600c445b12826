package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvFiles lists the dotenv files tried by LoadEnvFiles, in order.
var EnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads the first existing file from candidates (EnvFiles when
// none are given). Variables already present in the process environment are
// not overwritten. It returns the path that was loaded.
func LoadEnvFiles(candidates ...string) (string, error) {
	if len(candidates) == 0 {
		candidates = EnvFiles
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("load %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no .env file found")
}

// HostedFromEnv reports whether the environment signals a hosted build. Only
// an exact match of the configured value counts; anything else, including
// an unset or malformed variable, means a local build.
func HostedFromEnv(lookup func(string) (string, bool), h HostedConfig) bool {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(h.EnvVar)
	if !ok {
		return false
	}
	return v == h.Value
}
