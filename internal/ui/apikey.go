package ui

import (
	"log/slog"
	"os"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"github.com/zalando/go-keyring"
)

// ResolveAPIKey returns the Gemini API key from the environment, falling
// back to the OS keyring. An empty return means no key is configured;
// callers surface that at fetch time, not here.
func ResolveAPIKey() string {
	if key := os.Getenv(config.EnvAPIKey); key != "" {
		slog.Info(config.MsgKeyFromEnv,
			config.LogKeyComponent, config.CompUI,
			config.LogKeySource, "env")
		return key
	}

	if key, err := keyring.Get(config.KeyringService, config.KeyringAPIKeyAccount); err == nil && key != "" {
		slog.Info(config.MsgKeyFromKeyring,
			config.LogKeyComponent, config.CompUI,
			config.LogKeySource, "keyring")
		return key
	}

	slog.Warn(config.MsgKeyMissing, config.LogKeyComponent, config.CompUI)
	return ""
}
