package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-draftpost/internal/config"
)

const envPrefix = "DRAFTPOST_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // DRAFTPOST_CONFIG: config file name or path
	Root       string // DRAFTPOST_ROOT: site root
	OutputDir  string // DRAFTPOST_OUTPUT_DIR: output directory override
	Date       string // DRAFTPOST_DATE: post date
}

// knownEnvVars lists valid DRAFTPOST_* environment variables.
var knownEnvVars = map[string]bool{
	"DRAFTPOST_CONFIG":     true,
	"DRAFTPOST_ROOT":       true,
	"DRAFTPOST_OUTPUT_DIR": true,
	"DRAFTPOST_DATE":       true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("DRAFTPOST_CONFIG"),
		Root:       os.Getenv("DRAFTPOST_ROOT"),
		OutputDir:  os.Getenv("DRAFTPOST_OUTPUT_DIR"),
		Date:       os.Getenv("DRAFTPOST_DATE"),
	}
}

// warnUnknownEnvVars prints warnings for unrecognized DRAFTPOST_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values over the loaded config.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later in resolveJob).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Root != "" {
		cfg.Root = env.Root
	}
}
