// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/askbase/internal/chatbot"
	"github.com/pdiddy/askbase/internal/knowledge"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Chat reads one line at a time from standard input and answers it.

  what is <thing>        ask a question (who, what, when, where, why, how)
  load [from] <file>     add the entries in a knowledge file
  save [as|to] <file>    write the knowledge base to a file
  reset                  forget everything
  exit, quit             end the session

Unknown answers are asked for and remembered for the rest of the session.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	store := knowledge.NewStore(cfg.Knowledge)

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = cfg.Chat.KnowledgeFile
	}
	if path != "" {
		n, err := chatbot.LoadFile(store, path)
		if err != nil {
			return err
		}
		log.Info("loaded knowledge", zap.String("path", path), zap.Int("responses", n))
		fmt.Fprintf(os.Stderr, "Loaded %d responses from %s\n", n, path)
	}

	session := chatbot.NewSession(store, os.Stdin, os.Stdout,
		cfg.Chat.BotName, cfg.Chat.UserName, chatbot.WithLogger(log))
	return session.Run(cmd.Context())
}

func init() {
	chatCmd.Flags().StringP("file", "f", "", "knowledge file to load at start (default: chat.knowledge_file)")
	rootCmd.AddCommand(chatCmd)
}
