package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive (got %v)", c.Auth.TokenTTL)
	}

	if !strings.HasPrefix(c.API.PathPrefix, "/") {
		return fmt.Errorf("api.path_prefix must start with '/' (got %q)", c.API.PathPrefix)
	}

	if c.Limits.MaxFreePrompts < 0 || c.Limits.MaxFreeImprovements < 0 {
		return fmt.Errorf("limits quotas must be >= 0 (got prompts=%d improvements=%d)",
			c.Limits.MaxFreePrompts, c.Limits.MaxFreeImprovements)
	}

	if c.Claude.MaxTokens <= 0 {
		return fmt.Errorf("claude.max_tokens must be positive (got %d)", c.Claude.MaxTokens)
	}
	if c.Claude.Temperature < 0 || c.Claude.Temperature > 1 {
		return fmt.Errorf("claude.temperature must be within [0,1] (got %v)", c.Claude.Temperature)
	}

	return nil
}
