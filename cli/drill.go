package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/opendrill/bookdrill/book"
	"github.com/opendrill/bookdrill/trainer"
)

// CLI runs an interactive drill over one session. Commands at the move
// prompt: quit, reset, line, board.
type CLI struct {
	Session *trainer.Session
	In      *bufio.Reader
	Out     io.Writer
	Glyphs  *Glyphs
}

func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintf(c.Out, "You are playing as: %s\n", strings.ToUpper(c.Session.Side().String()))
	fmt.Fprintln(c.Out, "Commands: 'quit' to exit, 'reset' to start over, 'line' to see the current line, 'board' to redisplay the board")
	c.render()
	for {
		switch c.Session.Status() {
		case trainer.LineComplete:
			fmt.Fprintln(c.Out, "\nYou've reached the end of this line!")
			again, err := c.confirm("Start over?")
			if err != nil || !again {
				return err
			}
			c.reset()
			continue
		case trainer.Failed:
			again, err := c.confirm("Start over?")
			if err != nil || !again {
				return err
			}
			c.reset()
			continue
		}

		if played := c.Session.Advance(ctx); len(played) > 0 {
			fmt.Fprintf(c.Out, "\nComputer plays: %s\n", strings.Join(played, " "))
			fmt.Fprintf(c.Out, "Current line: %s\n", c.Session.LineText())
			c.render()
			continue
		}
		if !c.Session.UserTurn() {
			continue
		}

		fmt.Fprintf(c.Out, "Current line: %s\n", c.Session.LineText())
		fmt.Fprintf(c.Out, "%s> ", c.Session.Side())
		text, err := c.In.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		switch text {
		case "":
			continue
		case "quit":
			return nil
		case "reset":
			c.reset()
			continue
		case "line":
			fmt.Fprintf(c.Out, "\nCurrent line: %s\n\n", c.Session.LineText())
			continue
		case "board":
			c.render()
			continue
		}

		options := c.Session.Options()
		switch c.Session.Submit(text) {
		case trainer.Accepted:
			fmt.Fprintln(c.Out, "Correct!")
			c.render()
		case trainer.Rejected:
			fmt.Fprintf(c.Out, "Incorrect! Expected one of: %s\n", optionText(options))
		case trainer.Complete:
			// Handled at the top of the loop.
		}
	}
}

func (c *CLI) reset() {
	c.Session.Reset()
	fmt.Fprintln(c.Out, "\nPosition reset!")
	c.render()
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.Session.Board())
}

func (c *CLI) confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.Out, "%s (yes/no): ", prompt)
	text, err := c.In.ReadString('\n')
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	text = strings.ToLower(strings.TrimSpace(text))
	return text == "yes" || text == "y", nil
}

func optionText(opts []book.MoveOption) string {
	moves := make([]string, len(opts))
	for i, o := range opts {
		moves[i] = o.Move
	}
	return strings.Join(moves, ", ")
}
