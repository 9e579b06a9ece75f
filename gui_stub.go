//go:build !gui

package main

import (
	"context"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/wordbank"
)

func startGUI(context.Context, *wordbank.Bank) bool { return false }
