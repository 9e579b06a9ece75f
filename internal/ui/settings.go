//go:build gui

package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/game"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/settings"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/wordbank"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

// settingsPanel edits the custom word list and the word mode. A mode
// change applies from the next START AGAIN.
type settingsPanel struct {
	ctx  context.Context
	bank *wordbank.Bank

	addEntry    *widget.Entry
	deleteEntry *widget.Entry
	message     *widget.Label
	list        *widget.List
	mode        *widget.RadioGroup
	custom      []string
}

func newSettingsPanel(ctx context.Context, bank *wordbank.Bank) *settingsPanel {
	p := &settingsPanel{ctx: ctx, bank: bank}

	p.addEntry = widget.NewEntry()
	p.addEntry.SetPlaceHolder("word to add")
	p.addEntry.OnSubmitted = func(string) { p.onAdd() }

	p.deleteEntry = widget.NewEntry()
	p.deleteEntry.SetPlaceHolder("word to delete")
	p.deleteEntry.OnSubmitted = func(string) { p.onDelete() }

	p.message = widget.NewLabel(" ")

	p.list = widget.NewList(
		func() int { return len(p.custom) },
		func() fyne.CanvasObject { return widget.NewLabel("wwwww") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(p.custom[id])
		},
	)

	p.mode = widget.NewRadioGroup([]string{string(settings.Default), string(settings.Custom)}, nil)
	p.mode.Horizontal = true
	p.mode.Required = true
	p.mode.SetSelected(string(bank.LoadMode()))
	p.mode.OnChanged = p.onMode

	p.reload()
	return p
}

func (p *settingsPanel) container() fyne.CanvasObject {
	form := container.NewVBox(
		widget.NewLabel("Word mode"),
		p.mode,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, widget.NewButton("Add", p.onAdd), p.addEntry),
		container.NewBorder(nil, nil, nil, widget.NewButton("Delete", p.onDelete), p.deleteEntry),
		p.message,
		widget.NewLabel("Custom words"),
	)
	return container.NewBorder(form, nil, nil, nil, p.list)
}

func (p *settingsPanel) reload() {
	list, err := p.bank.CustomWords(p.ctx)
	if err != nil {
		p.message.SetText("Word database unavailable")
	}
	p.custom = list
	p.list.Refresh()
}

func (p *settingsPanel) onAdd() {
	w := p.addEntry.Text
	res, err := p.bank.AddCustomWord(p.ctx, w)
	switch {
	case errors.Is(err, words.ErrInvalidWord):
		p.message.SetText(game.RejectMessage(err))
		return
	case err != nil:
		p.message.SetText("Could not save the word")
		return
	case res == wordbank.AlreadyExists:
		p.message.SetText(fmt.Sprintf("%q is already in the list", w))
	default:
		p.message.SetText(fmt.Sprintf("Added %q", w))
	}
	p.addEntry.SetText("")
	p.reload()
}

func (p *settingsPanel) onDelete() {
	w := p.deleteEntry.Text
	res, err := p.bank.DeleteCustomWord(p.ctx, w)
	switch {
	case err != nil:
		p.message.SetText("Could not delete the word")
		return
	case res == wordbank.NotFound:
		p.message.SetText(fmt.Sprintf("%q is not in the list", w))
	default:
		p.message.SetText(fmt.Sprintf("Deleted %q", w))
		p.deleteEntry.SetText("")
	}
	p.reload()
}

func (p *settingsPanel) onMode(selected string) {
	m, err := settings.ParseMode(selected)
	if err != nil {
		return
	}
	if err := p.bank.SaveMode(m); err != nil {
		p.message.SetText("Could not save the mode")
		return
	}
	if m == settings.Custom && len(p.custom) == 0 {
		p.message.SetText(wordbank.NoticeCustomEmpty)
		return
	}
	p.message.SetText("Mode set to " + selected + ", applies to the next game")
}
