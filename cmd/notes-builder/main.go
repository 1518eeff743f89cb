// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notes-builder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/notes-builder/internal/convert"
	"github.com/pdiddy/notes-builder/internal/logging"
	"github.com/pdiddy/notes-builder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appFs is the filesystem every command reads and writes through.
var appFs afero.Fs = afero.NewOsFs()

// logger is built from the configured log level before any command runs.
var logger = zap.NewNop()

// rootCmd builds notes-data.js when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "notes-builder",
	Short: "Generate notes-data.js from the notes PDF",
	Long: `notes-builder reads "Lachlan @ Work.pdf" from the working directory,
extracts the text of every page in order, and writes notes-data.js: a single
window.NOTES_DATA assignment the notes page loads with a <script> tag.

If the PDF is missing, the error lists the PDF files that are present.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runBuild,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./notes-builder.yaml or ~/.config/notes-builder/notes-builder.yaml)")
	pf.String("dir", "", "directory holding the PDF and receiving the output (default: current directory)")
	pf.String("input", types.DefaultInputName, "input PDF file name")
	pf.String("output", types.DefaultOutputName, "output script file name")
	pf.String("log-level", types.DefaultLogLevel, "log level: debug, info, warn, or error")
}

// initConfig reads the optional config file and binds the persistent flags
// into viper, so a flag overrides the file and the file overrides defaults.
// Environment variables are deliberately not consulted.
func initConfig() {
	for key, flag := range map[string]string{
		"dir":       "dir",
		"input":     "input",
		"output":    "output",
		"log_level": "log-level",
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notes-builder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notes-builder"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the effective configuration. An empty dir resolves
// to the process working directory.
func loadConfig() (types.NotesConfig, error) {
	cfg := types.DefaultNotesConfig()
	if v := viper.GetString("dir"); v != "" {
		cfg.Dir = v
	}
	if v := viper.GetString("input"); v != "" {
		cfg.InputName = v
	}
	if v := viper.GetString("output"); v != "" {
		cfg.OutputName = v
	}
	if v := viper.GetString("log_level"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return cfg, fmt.Errorf("resolving working directory: %w", err)
		}
		cfg.Dir = wd
	}
	return cfg, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, err = convert.Run(appFs, convert.NewPDFOpener(appFs), cfg, cmd.OutOrStdout(), logger)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
