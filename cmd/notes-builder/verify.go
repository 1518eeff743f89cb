// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/notes-builder/internal/notesjs"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check a generated notes-data.js file",
	Long: `Verify parses a notes-data script, checks that page numbers run from 1
without gaps and that the workflow list is present, and prints a summary.
Without an argument it checks the configured output file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path = filepath.Join(cfg.Dir, cfg.OutputName)
	}

	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	payload, err := notesjs.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := notesjs.Validate(payload); err != nil {
		return fmt.Errorf("invalid %s: %w", path, err)
	}

	blank := 0
	for _, p := range payload.Pages {
		if p.Text == "" {
			blank++
		}
	}
	logger.Debug("verified notes data", zap.String("path", path), zap.Int("bytes", len(data)))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pages (%d without text), %d workflow sections\n",
		filepath.Base(path), len(payload.Pages), blank, len(payload.Workflow))
	return nil
}
