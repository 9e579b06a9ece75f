// Package console is the terminal front-end: it reads guesses line by line
// and prints each scored row, coloured when the output is a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/game"
)

// ANSI backgrounds: green, yellow, dark grey.
const (
	ansiExact   = "\x1b[42;97m"
	ansiPresent = "\x1b[43;30m"
	ansiAbsent  = "\x1b[100;97m"
	ansiReset   = "\x1b[0m"
)

// Player runs an interactive game loop.
type Player struct {
	src   game.Source
	in    *bufio.Scanner
	out   io.Writer
	color bool
}

// New returns a Player reading from in and writing to out.
func New(src game.Source, in io.Reader, out io.Writer, color bool) *Player {
	return &Player{src: src, in: bufio.NewScanner(in), out: out, color: color}
}

// IsTerminal reports whether f should receive colour codes.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run plays until ":quit" or end of input.
func (p *Player) Run(ctx context.Context) error {
	s := game.NewSession(ctx, p.src)
	p.banner(s)

	for {
		if s.State() == game.Playing {
			fmt.Fprintf(p.out, "guess %d/%d> ", s.Row()+1, game.MaxRows)
		} else {
			fmt.Fprint(p.out, "> ")
		}
		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			return p.in.Err()
		}
		line := strings.TrimSpace(p.in.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":new", ":reset":
			s.Reset(ctx)
			p.banner(s)
			continue
		}

		rv, err := s.Submit(ctx, line)
		if err != nil {
			fmt.Fprintln(p.out, game.RejectMessage(err))
			continue
		}
		fmt.Fprintln(p.out, p.Render(strings.ToLower(line), rv))
		if msg := s.StatusMessage(); msg != "" {
			fmt.Fprintln(p.out, msg)
			fmt.Fprintln(p.out, "Type :new to play again or :quit to exit.")
		}
	}
}

func (p *Player) banner(s *game.Session) {
	fmt.Fprintln(p.out, "WORDLE")
	if n := s.Notice(); n != "" {
		fmt.Fprintln(p.out, n)
	}
}

// Render formats one scored row. Without colour, exact letters are
// bracketed, present letters parenthesised and absent letters lowercase.
func (p *Player) Render(guess string, rv game.RowVerdict) string {
	guess = strings.TrimSpace(guess)
	var b strings.Builder
	for i, v := range rv {
		c := strings.ToUpper(guess[i : i+1])
		if p.color {
			b.WriteString(colorOf(v) + " " + c + " " + ansiReset)
			continue
		}
		switch v {
		case game.Exact:
			b.WriteString("[" + c + "]")
		case game.Present:
			b.WriteString("(" + c + ")")
		default:
			b.WriteString(" " + strings.ToLower(c) + " ")
		}
	}
	return b.String()
}

func colorOf(v game.Verdict) string {
	switch v {
	case game.Exact:
		return ansiExact
	case game.Present:
		return ansiPresent
	}
	return ansiAbsent
}
