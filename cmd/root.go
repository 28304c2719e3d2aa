package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/ionut-t/tino/internal/config"
	"github.com/ionut-t/tino/internal/logger"
	"github.com/ionut-t/tino/pkg/app"
	"github.com/ionut-t/tino/pkg/clipboard"
	"github.com/ionut-t/tino/pkg/index"
	"github.com/ionut-t/tino/pkg/note"
	"github.com/ionut-t/tino/store/notes"
	"github.com/ionut-t/tino/tui"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:           "tino",
	Short:         "tino is a TUI for capturing notes into PARA organised directories.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI()
	},
}

func Execute() {
	rootCmd.AddCommand(configCmd(), listCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $TINO_CONFIG or .tino.toml in the user config directory)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug logs to tino.log next to the config file")
}

func configPath() (string, error) {
	if configFlag != "" {
		return homedir.Expand(configFlag)
	}

	return config.DefaultPath()
}

func loadConfig() (config.Config, error) {
	path, err := configPath()
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		return cfg, fmt.Errorf("%w\nrun `tino config init` to create one", err)
	}

	return cfg, err
}

func scanner(cfg config.Config) app.Scanner {
	return func() ([]note.Entry, error) {
		return index.Scan(cfg.Dirs, index.WithIgnore(cfg.Ignore...))
	}
}

func runUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closer, err := logger.New(debugFlag, cfg.Path())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	log.WithField("config", cfg.Path()).Debug("starting")

	machine, err := app.New(cfg.Dirs, app.Executor{
		Store:     notes.New(cfg.CollisionPolicy),
		Scan:      scanner(cfg),
		Clipboard: clipboard.Write,
		Now:       time.Now,
		Log:       log,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(machine), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running UI: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return nil
	}

	path, err := m.State().EditorTarget()
	if err != nil {
		return err
	}

	if path == "" {
		return nil
	}

	log.WithFields(logrus.Fields{"editor": cfg.GetEditor(), "path": path}).Debug("opening editor")

	return openInEditor(cfg.GetEditor(), path)
}
