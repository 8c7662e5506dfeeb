package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/recommend"
)

const (
	promptText      = "Enter a movie name: "
	notFoundMessage = "Movie not found! Try another one."
)

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Answer one query per input line until EOF or an empty line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ensureEngine(cmd)
			if err != nil {
				return err
			}
			session := newQuerySession(cmd, engine)
			session.greet()
			for {
				title, err := session.readTitle()
				if title == "" {
					if err != nil && !errors.Is(err, io.EOF) {
						return err
					}
					return nil
				}
				if err := session.answer(title); err != nil {
					return err
				}
				if err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}
					return err
				}
				fmt.Fprintln(session.out)
			}
		},
	}
}

// runPrompt is the no-argument mode: ask once, answer once.
func runPrompt(cmd *cobra.Command, ctx *commandContext) error {
	engine, err := ctx.ensureEngine(cmd)
	if err != nil {
		return err
	}
	session := newQuerySession(cmd, engine)
	session.greet()
	title, err := session.readTitle()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return session.answer(title)
}

type querySession struct {
	cmd         *cobra.Command
	engine      *recommend.Engine
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

func newQuerySession(cmd *cobra.Command, engine *recommend.Engine) *querySession {
	in := cmd.InOrStdin()
	return &querySession{
		cmd:         cmd,
		engine:      engine,
		reader:      bufio.NewReader(in),
		out:         cmd.OutOrStdout(),
		interactive: isTerminal(in),
	}
}

func (s *querySession) greet() {
	if !s.interactive {
		return
	}
	fmt.Fprintln(s.out, renderBanner("Welcome to the reelmatch movie recommender!", shouldColorize(s.out)))
	fmt.Fprintf(s.out, "%d movies in the catalog.\n\n", s.engine.Catalog().Len())
}

// readTitle returns the next line with surrounding whitespace removed. A
// final line without a newline is returned together with io.EOF.
func (s *querySession) readTitle() (string, error) {
	if s.interactive {
		fmt.Fprint(s.out, promptText)
	}
	line, err := s.reader.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (s *querySession) answer(title string) error {
	matches, err := s.engine.Recommend(queryContext(s.cmd.Context()), title)
	if errors.Is(err, recommend.ErrNotFound) {
		fmt.Fprintln(s.out, notFoundMessage)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Because you liked '%s', you might also enjoy:\n", title)
	writeMatchList(s.out, matches)
	return nil
}
