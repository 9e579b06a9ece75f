//go:build gui

// Package ui is the fyne desktop front-end. It only reads and writes the
// game session and the word bank; all rules live in internal/game and
// internal/wordbank.
package ui

import (
	"context"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/game"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/wordbank"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

const (
	AppID        = "io.robalobadob.wordle"
	AppName      = "Wordle"
	WindowWidth  = 600
	WindowHeight = 720
	tileSize     = 72
)

var (
	colorExact   = color.NRGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	colorPresent = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	colorAbsent  = color.NRGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff}
	colorActive  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorLocked  = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
)

// tile is one letter cell of the grid.
type tile struct {
	bg   *canvas.Rectangle
	text *canvas.Text
}

func newTile() *tile {
	bg := canvas.NewRectangle(colorLocked)
	bg.StrokeColor = color.Black
	bg.StrokeWidth = 2
	bg.SetMinSize(fyne.NewSize(tileSize, tileSize))

	text := canvas.NewText("", color.Black)
	text.TextSize = 30
	text.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	text.Alignment = fyne.TextAlignCenter
	return &tile{bg: bg, text: text}
}

func (t *tile) set(letter string, fill color.Color) {
	t.text.Text = letter
	t.bg.FillColor = fill
	t.text.Color = color.Black
	if fill == colorExact || fill == colorAbsent {
		t.text.Color = color.White
	}
	t.bg.Refresh()
	t.text.Refresh()
}

// App owns the window and the current session.
type App struct {
	ctx     context.Context
	fyneApp fyne.App
	window  fyne.Window
	bank    *wordbank.Bank
	session *game.Session

	tiles    [game.MaxRows][words.Length]*tile
	entry    *widget.Entry
	message  *widget.Label
	guessBtn *widget.Button
	resetBtn *widget.Button

	settings *settingsPanel
}

// New builds the window for bank.
func New(ctx context.Context, bank *wordbank.Bank) *App {
	a := &App{
		ctx:     ctx,
		fyneApp: app.NewWithID(AppID),
		bank:    bank,
	}
	a.window = a.fyneApp.NewWindow(AppName)
	a.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	a.window.CenterOnScreen()

	a.session = game.NewSession(ctx, bank)
	a.settings = newSettingsPanel(ctx, bank)

	tabs := container.NewAppTabs(
		container.NewTabItem("Play", a.playTab()),
		container.NewTabItem("Settings", a.settings.container()),
	)
	a.window.SetContent(tabs)
	a.paint()
	return a
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.window.ShowAndRun()
}

func (a *App) playTab() fyne.CanvasObject {
	title := canvas.NewText(AppName, color.Black)
	title.TextSize = 40
	title.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	title.Alignment = fyne.TextAlignCenter

	cells := make([]fyne.CanvasObject, 0, game.MaxRows*words.Length)
	for r := range a.tiles {
		for c := range a.tiles[r] {
			t := newTile()
			a.tiles[r][c] = t
			cells = append(cells, container.NewStack(t.bg, container.NewCenter(t.text)))
		}
	}
	grid := container.NewGridWithColumns(words.Length, cells...)

	a.entry = widget.NewEntry()
	a.entry.SetPlaceHolder("type a five-letter word")
	a.entry.OnChanged = a.onTyping
	a.entry.OnSubmitted = func(string) { a.onGuess() }

	a.message = widget.NewLabel(" ")
	a.message.Alignment = fyne.TextAlignCenter

	a.guessBtn = widget.NewButton("GUESS", a.onGuess)
	a.guessBtn.Importance = widget.SuccessImportance
	a.resetBtn = widget.NewButton("START AGAIN", a.onReset)
	a.resetBtn.Importance = widget.DangerImportance
	a.resetBtn.Hide()

	return container.NewVBox(
		title,
		container.NewCenter(grid),
		a.entry,
		a.message,
		container.NewCenter(container.NewStack(a.guessBtn, a.resetBtn)),
	)
}

// onTyping previews the entry in the active row, capped at five letters.
func (a *App) onTyping(s string) {
	if clipped, cut := clipEntry(s); cut {
		a.entry.SetText(clipped)
		return
	}
	if a.session.State() != game.Playing {
		return
	}
	letters := previewLetters(s)
	for c, t := range a.tiles[a.session.Row()] {
		t.set(letters[c], colorActive)
	}
}

func (a *App) onGuess() {
	if _, err := a.session.Submit(a.ctx, a.entry.Text); err != nil {
		log.Debug().Err(err).Str("guess", a.entry.Text).Msg("guess rejected")
		a.message.SetText(game.RejectMessage(err))
		return
	}
	a.entry.SetText("")
	a.paint()

	if msg := a.session.StatusMessage(); msg != "" {
		a.message.SetText(msg)
		a.entry.Disable()
		a.guessBtn.Hide()
		a.resetBtn.Show()
		return
	}
	a.message.SetText(" ")
}

func (a *App) onReset() {
	a.session.Reset(a.ctx)
	a.entry.SetText("")
	a.entry.Enable()
	a.resetBtn.Hide()
	a.guessBtn.Show()
	a.paint()
}

// paint redraws every tile from the session snapshot.
func (a *App) paint() {
	snap := a.session.Snapshot()
	for r := range a.tiles {
		for c, t := range a.tiles[r] {
			switch {
			case r < len(snap.Rows):
				row := snap.Rows[r]
				t.set(strings.ToUpper(row.Guess[c:c+1]), verdictColor(row.Verdict[c]))
			case r == snap.Row && snap.State == game.Playing:
				t.set("", colorActive)
			default:
				t.set("", colorLocked)
			}
		}
	}
	msg := snap.Notice
	if msg == "" {
		msg = " "
	}
	if snap.State == game.Playing && a.message != nil {
		a.message.SetText(msg)
	}
}

func verdictColor(v game.Verdict) color.Color {
	switch v {
	case game.Exact:
		return colorExact
	case game.Present:
		return colorPresent
	}
	return colorAbsent
}

