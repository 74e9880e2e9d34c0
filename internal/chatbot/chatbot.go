// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chatbot turns a line of user input into a reply. The first word
// selects the intent (exit, load, a question word, reset or save); anything
// else is smalltalk. Question intents are answered from a KnowledgeBase, and
// unknown answers are learned by prompting the user.
package chatbot

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/pdiddy/askbase/internal/knowledge"
)

// KnowledgeBase is the store the bot answers from. *knowledge.Store
// satisfies it.
type KnowledgeBase interface {
	Get(category, entity string) (string, error)
	Put(category, entity, answer string) error
	Reset()
	Read(r io.Reader) (int, error)
	Write(w io.Writer) error
	Len() int
	IsCategory(name string) bool
	FitsEntity(entity string) bool
}

// Prompter asks the user a question and returns the trimmed reply.
type Prompter interface {
	Prompt(question string) (string, error)
}

// Reply is the bot's answer to one line of input.
type Reply struct {
	Text string
	// Exit is set when the user asked to end the session.
	Exit bool
}

// Bot dispatches user input to intents.
type Bot struct {
	kb     KnowledgeBase
	prompt Prompter
	log    *zap.Logger
}

// Option configures a Bot.
type Option func(*Bot)

// WithLogger sets the logger used for load, save and reset events.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.log = l
		}
	}
}

// New returns a Bot answering from kb and learning through p.
func New(kb KnowledgeBase, p Prompter, opts ...Option) *Bot {
	b := &Bot{kb: kb, prompt: p, log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Reply handles one whitespace-split line of input. The returned error is
// non-nil only when prompting the user fails; knowledge base failures are
// reported in the reply text.
func (b *Bot) Reply(words []string) (Reply, error) {
	if len(words) == 0 {
		return Reply{}, nil
	}

	intent := words[0]
	switch {
	case is(intent, "exit", "quit"):
		b.kb.Reset()
		return Reply{Text: "Goodbye!", Exit: true}, nil
	case is(intent, "load"):
		return Reply{Text: b.load(words[1:])}, nil
	case b.kb.IsCategory(intent):
		text, err := b.question(words)
		return Reply{Text: text}, err
	case is(intent, "reset"):
		return Reply{Text: b.reset()}, nil
	case is(intent, "save"):
		return Reply{Text: b.save(words[1:])}, nil
	}

	return Reply{Text: smalltalk(words)}, nil
}

func (b *Bot) question(words []string) (string, error) {
	intent, rest := words[0], words[1:]
	if len(rest) > 0 && is(rest[0], "is", "are") {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "Invalid question!", nil
	}

	entity := strings.Join(rest, " ")
	if !b.kb.FitsEntity(entity) {
		return "That question is too long.", nil
	}

	answer, err := b.kb.Get(intent, entity)
	if err == nil {
		return answer, nil
	}
	if !errors.Is(err, knowledge.ErrNotFound) {
		b.log.Warn("lookup failed", zap.String("intent", intent), zap.String("entity", entity), zap.Error(err))
		return "Something went wrong!", nil
	}

	answer, err = b.prompt.Prompt("I don't know. " + strings.Join(words, " ") + "?")
	if err != nil {
		return "", errors.Wrap(err, "prompting for answer")
	}
	if answer == "" {
		return ":-(", nil
	}

	if err := b.kb.Put(intent, entity, answer); err != nil {
		b.log.Warn("learning failed", zap.String("intent", intent), zap.String("entity", entity), zap.Error(err))
		switch {
		case errors.Is(err, knowledge.ErrOutOfMemory):
			return "No memory currently!", nil
		case errors.Is(err, knowledge.ErrTooLong):
			return "That answer is too long.", nil
		default:
			return "Something went wrong!", nil
		}
	}
	b.log.Debug("learned", zap.String("intent", intent), zap.String("entity", entity))
	return "Thank you.", nil
}

func (b *Bot) load(args []string) string {
	path := filePath(args, "from")
	if path == "" {
		return "No file path detected."
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path + " not found."
		}
		b.log.Warn("opening knowledge file", zap.String("path", path), zap.Error(err))
		return "Could not open " + path + "."
	}
	defer f.Close()

	n, err := b.kb.Read(f)
	if err != nil {
		b.log.Warn("reading knowledge file", zap.String("path", path), zap.Int("loaded", n), zap.Error(err))
		return "Error reading " + path + " after " + strconv.Itoa(n) + " responses."
	}
	b.log.Debug("loaded knowledge", zap.String("path", path), zap.Int("responses", n))
	return "Successfully loaded " + strconv.Itoa(n) + " responses from " + path
}

func (b *Bot) save(args []string) string {
	path := filePath(args, "as", "to")
	if path == "" {
		return "No file path detected."
	}

	if err := SaveFile(b.kb, path); err != nil {
		b.log.Warn("saving knowledge file", zap.String("path", path), zap.Error(err))
		return "Error when saving to " + path + "!"
	}
	b.log.Debug("saved knowledge", zap.String("path", path), zap.Int("entries", b.kb.Len()))
	return "My knowledge has been saved to " + path + "."
}

func (b *Bot) reset() string {
	if b.kb.Len() == 0 {
		return "Nothing to reset."
	}
	b.kb.Reset()
	b.log.Debug("reset knowledge")
	return "Chatbot reset."
}

// LoadFile reads the knowledge file at path into kb.
func LoadFile(kb KnowledgeBase, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return kb.Read(f)
}

// SaveFile writes kb to path, replacing any existing file.
func SaveFile(kb KnowledgeBase, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := kb.Write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// filePath joins args into a path, dropping one leading filler word.
func filePath(args []string, fillers ...string) string {
	if len(args) > 0 && is(args[0], fillers...) {
		args = args[1:]
	}
	return strings.Join(args, " ")
}

func is(word string, names ...string) bool {
	for _, n := range names {
		if strings.EqualFold(word, n) {
			return true
		}
	}
	return false
}
