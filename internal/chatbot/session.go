// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chatbot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Session runs an interactive conversation over a line-oriented reader and
// writer. Learning prompts read from the same input as commands.
type Session struct {
	BotName  string
	UserName string

	in  *bufio.Scanner
	out io.Writer
	bot *Bot
}

// NewSession wires kb to in and out. opts are passed to the Bot.
func NewSession(kb KnowledgeBase, in io.Reader, out io.Writer, botName, userName string, opts ...Option) *Session {
	s := &Session{
		BotName:  botName,
		UserName: userName,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	s.bot = New(kb, s, opts...)
	return s
}

// Prompt prints question as the bot and reads one line from the user.
// It implements Prompter.
func (s *Session) Prompt(question string) (string, error) {
	fmt.Fprintf(s.out, "%s: %s\n", s.BotName, question)
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Run greets the user and answers lines until exit, end of input or
// cancellation of ctx. End of input is not an error.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "%s: Hello, I'm %s.\n", s.BotName, s.BotName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		reply, err := s.bot.Reply(strings.Fields(line))
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if reply.Text != "" {
			fmt.Fprintf(s.out, "%s: %s\n", s.BotName, reply.Text)
		}
		if reply.Exit {
			return nil
		}
	}
}

func (s *Session) readLine() (string, error) {
	fmt.Fprintf(s.out, "%s: ", s.UserName)
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return "", io.EOF
}
