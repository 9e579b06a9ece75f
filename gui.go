//go:build gui

package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/ui"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/wordbank"
)

func startGUI(ctx context.Context, bank *wordbank.Bank) bool {
	log.Info().Msg("starting wordle in GUI mode")
	ui.New(ctx, bank).Run()
	return true
}
