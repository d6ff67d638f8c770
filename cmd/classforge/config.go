// classforge/cmd/classforge/config.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config holds CLI defaults loaded from classforge.toml. Flags always win
// over config values; config values always win over the flag package's own
// zero-value defaults.
type Config struct {
	Naming    string `toml:"naming" validate:"omitempty,oneof=hash readable camel"`
	ColorMode string `toml:"color_mode" validate:"omitempty,oneof=hex oklch hsl var"`
	ColorMix  bool   `toml:"color_mix"`
	TokensDir string `toml:"tokens_dir"`
}

var configValidator = validator.New()

// loadConfig reads classforge.toml from the working directory, if present.
// A missing file is not an error — the zero-value Config applies the CLI's
// own flag defaults.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := configValidator.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid %s: %s", path, validationErrorsToMessage(err))
	}
	return cfg, nil
}

// validationErrorsToMessage flattens validator.ValidationErrors into a
// single human-readable line for CLI output.
func validationErrorsToMessage(err error) string {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldErr := range validationErrs {
			messages = append(messages, fmt.Sprintf("field '%s': %s", fieldErr.Field(), fieldErr.Error()))
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}

// applyConfigDefaults fills any compile-command flag not set on the command
// line from cfg, letting classforge.toml set fleet-wide defaults while an
// explicit flag on the command line always takes precedence.
func applyConfigDefaults(cfg Config) {
	flags := compileCmd.Flags()
	if !flags.Changed("naming") && cfg.Naming != "" {
		compileNamingFlag = cfg.Naming
	}
	if !flags.Changed("color-mode") && cfg.ColorMode != "" {
		compileColorFlag = cfg.ColorMode
	}
	if !flags.Changed("color-mix") && cfg.ColorMix {
		compileColorMix = cfg.ColorMix
	}
	if !flags.Changed("tokens") && cfg.TokensDir != "" {
		compileTokensDir = cfg.TokensDir
	}
}
