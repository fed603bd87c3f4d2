// Package oti implements a UCI-like line protocol for driving the
// trainer from an external GUI or harness.
//
// Commands: oti, isready, load FILE, newsession [SEED], go, move SAN,
// line, board, reset, quit.
package oti

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opendrill/bookdrill/book"
	"github.com/opendrill/bookdrill/cli"
	"github.com/opendrill/bookdrill/pick"
	"github.com/opendrill/bookdrill/trainer"
)

type Engine struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger

	book    *book.Book
	session *trainer.Session
}

func NewEngine(in io.Reader, out io.Writer, log zerolog.Logger) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		e.log.Debug().Str("command", line).Msg("recv")
		words := strings.Split(line, " ")
		switch words[0] {
		case "oti":
			fmt.Fprintln(e.out, "id name bookdrill")
			fmt.Fprintln(e.out, "otiok")
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		case "quit":
			return nil
		case "load":
			if err := e.load(words); err != nil {
				fmt.Fprintf(e.out, "error %v\n", err)
				break
			}
			fmt.Fprintf(e.out, "loadok start %s nodes %d\n",
				e.book.Start, e.book.Len())
		case "newsession":
			if err := e.newSession(words); err != nil {
				fmt.Fprintf(e.out, "error %v\n", err)
				break
			}
			fmt.Fprintf(e.out, "sessionok side %s\n", e.session.Side())
		case "go":
			s, err := e.active()
			if err != nil {
				fmt.Fprintf(e.out, "error %v\n", err)
				break
			}
			played := s.Advance(ctx)
			fmt.Fprintf(e.out, "played%s\n", joinWords(played))
			e.report(s)
		case "move":
			s, err := e.active()
			if err != nil {
				fmt.Fprintf(e.out, "error %v\n", err)
				break
			}
			if len(words) < 2 {
				fmt.Fprintln(e.out, "error move: expected a move")
				break
			}
			switch s.Submit(strings.Join(words[1:], " ")) {
			case trainer.Accepted:
				fmt.Fprintf(e.out, "accepted%s\n", joinWords(s.Moves()))
			case trainer.Rejected:
				fmt.Fprintln(e.out, "rejected")
			case trainer.Complete:
				fmt.Fprintln(e.out, "complete")
			}
		case "line":
			s, err := e.active()
			if err != nil {
				fmt.Fprintf(e.out, "error %v\n", err)
				break
			}
			fmt.Fprintf(e.out, "line%s\n", joinWords(s.Moves()))
		case "board":
			s, err := e.active()
			if err != nil {
				fmt.Fprintf(e.out, "error %v\n", err)
				break
			}
			cli.RenderBoard(&cli.DefaultGlyphs, e.out, s.Board())
		case "reset":
			s, err := e.active()
			if err != nil {
				fmt.Fprintf(e.out, "error %v\n", err)
				break
			}
			s.Reset()
			fmt.Fprintln(e.out, "resetok")
		default:
			return fmt.Errorf("unknown command: %q", line)
		}
	}
}

func (e *Engine) load(words []string) error {
	if len(words) < 2 {
		return errors.New("load: expected a file name")
	}
	path := strings.Join(words[1:], " ")
	var (
		b   *book.Book
		err error
	)
	if path == "example" {
		b = book.Example()
	} else if b, err = book.LoadFile(path); err != nil {
		return err
	}
	e.book = b
	e.session = nil
	e.log.Info().Str("path", path).Int("nodes", b.Len()).Msg("repertoire loaded")
	return nil
}

func (e *Engine) newSession(words []string) error {
	if e.book == nil {
		return errors.New("newsession: no repertoire loaded")
	}
	var sel pick.Selector
	if len(words) > 1 {
		seed, err := strconv.ParseInt(words[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad seed: %q", words[1])
		}
		sel = pick.NewWeighted(seed)
	}
	s, err := trainer.NewSession(e.book, e.book.Start.Flip(), sel)
	if err != nil {
		return err
	}
	e.session = s
	return nil
}

func (e *Engine) active() (*trainer.Session, error) {
	if e.session == nil {
		return nil, errors.New("no session: run newsession first")
	}
	return e.session, nil
}

func (e *Engine) report(s *trainer.Session) {
	switch s.Status() {
	case trainer.LineComplete:
		fmt.Fprintln(e.out, "complete")
	case trainer.Failed:
		fmt.Fprintln(e.out, "failed")
	}
}

func joinWords(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return " " + strings.Join(words, " ")
}
