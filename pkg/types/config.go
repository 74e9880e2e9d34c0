// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// DefaultCategories are the question words recognized when no categories
// are configured. Order is the order sections are written in.
var DefaultCategories = []string{"who", "what", "when", "where", "why", "how"}

const (
	// DefaultMaxEntity is the default maximum entity length in characters.
	DefaultMaxEntity = 64

	// DefaultMaxAnswer is the default maximum answer length in characters.
	DefaultMaxAnswer = 256
)

// OverflowPolicy selects what the knowledge base does with text longer than
// its configured bound.
type OverflowPolicy string

const (
	// OverflowReject refuses the entry with ErrTooLong.
	OverflowReject OverflowPolicy = "reject"

	// OverflowTruncate cuts the text to the bound.
	OverflowTruncate OverflowPolicy = "truncate"
)

// KnowledgeConfig holds settings for a knowledge store instance.
type KnowledgeConfig struct {
	// Categories lists the recognized question words in write order.
	Categories []string `json:"categories" yaml:"categories" mapstructure:"categories"`

	// MaxEntity is the maximum entity length in characters (default 64).
	MaxEntity int `json:"max_entity" yaml:"max_entity" mapstructure:"max_entity"`

	// MaxAnswer is the maximum answer length in characters (default 256).
	MaxAnswer int `json:"max_answer" yaml:"max_answer" mapstructure:"max_answer"`

	// MaxEntries bounds the total number of entries across all categories.
	// Zero means unbounded.
	MaxEntries int `json:"max_entries" yaml:"max_entries" mapstructure:"max_entries"`

	// Overflow selects reject or truncate for over-long text.
	Overflow OverflowPolicy `json:"overflow" yaml:"overflow" mapstructure:"overflow"`
}

// ChatConfig holds settings for the interactive chatbot.
type ChatConfig struct {
	// BotName is printed before each chatbot reply.
	BotName string `json:"bot_name" yaml:"bot_name" mapstructure:"bot_name"`

	// UserName is printed before each user prompt.
	UserName string `json:"user_name" yaml:"user_name" mapstructure:"user_name"`

	// KnowledgeFile is loaded when a chat session starts. Optional.
	KnowledgeFile string `json:"knowledge_file,omitempty" yaml:"knowledge_file,omitempty" mapstructure:"knowledge_file"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// JSON switches from console output to structured JSON.
	JSON bool `json:"json" yaml:"json" mapstructure:"json"`
}

// Config groups all askbase settings.
type Config struct {
	Knowledge KnowledgeConfig `json:"knowledge" yaml:"knowledge" mapstructure:"knowledge"`
	Chat      ChatConfig      `json:"chat" yaml:"chat" mapstructure:"chat"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Normalize()
	return cfg
}

// Normalize fills zero values with defaults and canonicalizes names.
func (c *Config) Normalize() {
	c.Knowledge.Normalize()
	if c.Chat.BotName == "" {
		c.Chat.BotName = "Chatbot"
	}
	if c.Chat.UserName == "" {
		c.Chat.UserName = "User"
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Normalize fills zero values with defaults. Category names are trimmed and
// blank names dropped.
func (k *KnowledgeConfig) Normalize() {
	var cats []string
	for _, c := range k.Categories {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		cats = append(cats, DefaultCategories...)
	}
	k.Categories = cats

	if k.MaxEntity <= 0 {
		k.MaxEntity = DefaultMaxEntity
	}
	if k.MaxAnswer <= 0 {
		k.MaxAnswer = DefaultMaxAnswer
	}
	if k.MaxEntries < 0 {
		k.MaxEntries = 0
	}
	if k.Overflow != OverflowTruncate {
		k.Overflow = OverflowReject
	}
}
