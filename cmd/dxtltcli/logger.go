package main

import "go.uber.org/zap"

// newLogger builds a zap logger for the CLI's own diagnostics: trial-
// by-trial auto-tune scoring under -verbose, and terse structured
// warnings otherwise. The library packages never log — see DESIGN.md's
// ambient-stack entry — this is the CLI's own concern, same boundary
// the teacher draws between its library packages and cmd/gwebp.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}
