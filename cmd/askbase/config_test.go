// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/askbase/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	v, err := newViper("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	got, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), got)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "askbase.yaml", `knowledge:
  categories: [who, what]
  max_entity: 32
  overflow: truncate
chat:
  bot_name: Ada
  knowledge_file: kb.ini
log:
  level: debug
`)

	v, err := newViper(path, "")
	require.NoError(t, err)
	got, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"who", "what"}, got.Knowledge.Categories)
	assert.Equal(t, 32, got.Knowledge.MaxEntity)
	assert.Equal(t, types.DefaultMaxAnswer, got.Knowledge.MaxAnswer)
	assert.Equal(t, types.OverflowTruncate, got.Knowledge.Overflow)
	assert.Equal(t, "Ada", got.Chat.BotName)
	assert.Equal(t, "User", got.Chat.UserName)
	assert.Equal(t, "kb.ini", got.Chat.KnowledgeFile)
	assert.Equal(t, "debug", got.Log.Level)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("ASKBASE_KNOWLEDGE_MAX_ANSWER", "100")
	t.Setenv("ASKBASE_CHAT_USER_NAME", "Grace")

	v, err := newViper("", "")
	require.NoError(t, err)
	got, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 100, got.Knowledge.MaxAnswer)
	assert.Equal(t, "Grace", got.Chat.UserName)
}

func TestLoadConfigDotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "ASKBASE_CHAT_BOT_NAME=Dotty\n")
	t.Cleanup(func() { os.Unsetenv("ASKBASE_CHAT_BOT_NAME") })

	v, err := newViper("", envFile)
	require.NoError(t, err)
	got, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "Dotty", got.Chat.BotName)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := newViper(filepath.Join(dir, "missing.yaml"), "")
	require.Error(t, err)

	path := writeFile(t, dir, "bad.yaml", "knowledge:\n  overflow: wrap\n")
	v, err := newViper(path, "")
	require.NoError(t, err)
	_, err = loadConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrap")
}

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--env-file", ""))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTeachAskExport(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	kb := filepath.Join(t.TempDir(), "kb.ini")

	out, err := runCLI(t, "teach", "who", "Ada", "Lovelace", "--answer", "A mathematician.", "--file", kb)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 1 responses")

	data, err := os.ReadFile(kb)
	require.NoError(t, err)
	assert.Equal(t, "[who]\nAda Lovelace=A mathematician.\n", string(data))

	out, err = runCLI(t, "ask", "who", "ada", "lovelace", "--file", kb)
	require.NoError(t, err)
	assert.Equal(t, "A mathematician.\n", out)

	_, err = runCLI(t, "ask", "banana", "x", "--file", kb)
	require.Error(t, err)

	out, err = runCLI(t, "export", "--format", "json", "--file", kb)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"category":"who","entity":"Ada Lovelace","answer":"A mathematician."}]`, out)

	_, err = runCLI(t, "export", "--format", "xml", "--file", kb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
	assert.Equal(t, []string{"use yaml or json"}, errors.GetAllHints(err))

	out, err = runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "askbase "))
}
