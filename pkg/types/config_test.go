// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultCategories, cfg.Knowledge.Categories)
	assert.Equal(t, DefaultMaxEntity, cfg.Knowledge.MaxEntity)
	assert.Equal(t, DefaultMaxAnswer, cfg.Knowledge.MaxAnswer)
	assert.Equal(t, 0, cfg.Knowledge.MaxEntries)
	assert.Equal(t, OverflowReject, cfg.Knowledge.Overflow)
	assert.Equal(t, "Chatbot", cfg.Chat.BotName)
	assert.Equal(t, "User", cfg.Chat.UserName)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestKnowledgeConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   KnowledgeConfig
		want KnowledgeConfig
	}{
		{
			name: "blank categories fall back to defaults",
			in:   KnowledgeConfig{Categories: []string{" ", ""}},
			want: KnowledgeConfig{Categories: DefaultCategories, MaxEntity: 64, MaxAnswer: 256, Overflow: OverflowReject},
		},
		{
			name: "custom values kept",
			in:   KnowledgeConfig{Categories: []string{" which "}, MaxEntity: 10, MaxAnswer: 20, MaxEntries: 5, Overflow: OverflowTruncate},
			want: KnowledgeConfig{Categories: []string{"which"}, MaxEntity: 10, MaxAnswer: 20, MaxEntries: 5, Overflow: OverflowTruncate},
		},
		{
			name: "negative and unknown values reset",
			in:   KnowledgeConfig{MaxEntity: -1, MaxAnswer: -1, MaxEntries: -3, Overflow: "wrap"},
			want: KnowledgeConfig{Categories: DefaultCategories, MaxEntity: 64, MaxAnswer: 256, Overflow: OverflowReject},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDoesNotAliasDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Knowledge.Categories[0] = "changed"
	assert.Equal(t, "who", DefaultCategories[0])
}
