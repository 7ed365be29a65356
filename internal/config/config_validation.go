// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can drive the
// command. Model layers are not checked here; repeated or conflicting
// parameters are rejected when the layers are applied.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	switch cfg.App.LogFormat {
	case LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidAppConfigs, cfg.App.LogFormat)
	}

	switch cfg.App.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidAppConfigs, cfg.App.Output)
	}

	return nil
}
