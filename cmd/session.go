package cmd

import (
	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/viewer"
	"github.com/rs/zerolog"
)

func sessionOptions(cfg config.Config, logger zerolog.Logger) viewer.Options {
	return viewer.Options{
		Logger:               logger,
		InitialSpeed:         cfg.Speed(),
		InitialFocus:         movement.FocusOverview,
		MaxFrameDelta:        cfg.MaxFrameDelta(),
		ResetFocusOnDeselect: cfg.ResetFocusOnDeselect(),
	}
}
