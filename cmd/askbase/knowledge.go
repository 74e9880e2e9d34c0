// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/askbase/internal/chatbot"
	"github.com/pdiddy/askbase/internal/knowledge"
)

// --- ask subcommand ---

var askCmd = &cobra.Command{
	Use:   "ask <category> <entity...>",
	Short: "Look up one answer in a knowledge file",
	Long: `Ask loads the knowledge file and prints the answer stored for the entity
under the category. It exits non-zero when there is no answer.`,
	Example: `  askbase ask who Ada Lovelace --file kb.ini`,
	Args:    cobra.MinimumNArgs(2),
	RunE:    runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	store, _, err := openKnowledge(cmd, false)
	if err != nil {
		return err
	}

	answer, err := store.Get(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}

// --- teach subcommand ---

var teachCmd = &cobra.Command{
	Use:   "teach <category> <entity...> --answer <text>",
	Short: "Store one answer in a knowledge file",
	Long: `Teach loads the knowledge file (if it exists), stores the answer for the
entity under the category, overwriting any previous answer, and saves the
file.`,
	Example: `  askbase teach what color --answer blue --file kb.ini`,
	Args:    cobra.MinimumNArgs(2),
	RunE:    runTeach,
}

func runTeach(cmd *cobra.Command, args []string) error {
	answer, _ := cmd.Flags().GetString("answer")
	if strings.TrimSpace(answer) == "" {
		return errors.New("--answer is required")
	}

	store, path, err := openKnowledge(cmd, true)
	if err != nil {
		return err
	}

	entity := strings.Join(args[1:], " ")
	if err := store.Put(args[0], entity, answer); err != nil {
		return err
	}
	if err := chatbot.SaveFile(store, path); err != nil {
		return err
	}
	log.Info("taught", zap.String("category", args[0]), zap.String("entity", entity), zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d responses to %s\n", store.Len(), path)
	return nil
}

// --- export subcommand ---

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print a knowledge file as YAML or JSON",
	Long: `Export loads the knowledge file and prints every entry with its category,
in file order. The output is for inspection and other tools; load and save
always use the [category] entity=answer format.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, _, err := openKnowledge(cmd, false)
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "":
		return store.ExportYAML(cmd.OutOrStdout())
	case "json":
		return store.ExportJSON(cmd.OutOrStdout())
	default:
		return errors.WithHintf(errors.Newf("unsupported format %q", format), "use yaml or json")
	}
}

// --- shared helpers ---

// openKnowledge builds a store from cfg and loads the --file knowledge
// file into it. When allowMissing is set a missing file yields an empty
// store.
func openKnowledge(cmd *cobra.Command, allowMissing bool) (*knowledge.Store, string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = cfg.Chat.KnowledgeFile
	}
	if path == "" {
		return nil, "", errors.WithHint(errors.New("no knowledge file"),
			"pass --file or set chat.knowledge_file")
	}

	store := knowledge.NewStore(cfg.Knowledge)
	n, err := chatbot.LoadFile(store, path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return store, path, nil
		}
		return nil, "", err
	}
	log.Debug("loaded knowledge", zap.String("path", path), zap.Int("responses", n))
	return store, path, nil
}

func init() {
	for _, c := range []*cobra.Command{askCmd, teachCmd, exportCmd} {
		c.Flags().StringP("file", "f", "", "knowledge file (default: chat.knowledge_file)")
	}
	teachCmd.Flags().StringP("answer", "a", "", "answer to store")
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(teachCmd)
	rootCmd.AddCommand(exportCmd)
}
