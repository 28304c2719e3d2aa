package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/ionut-t/tino/internal/config"
	"github.com/ionut-t/tino/pkg/note"
	"github.com/ionut-t/tino/store/notes"
	"github.com/ionut-t/tino/ui/styles"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Open the config file in the editor, or set single values with flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			editorFlag, _ := cmd.Flags().GetString(config.EditorKey)
			policyFlag, _ := cmd.Flags().GetString(config.CollisionPolicyKey)

			flagsSet := false

			if editorFlag != "" {
				if err := config.Set(path, config.EditorKey, editorFlag); err != nil {
					return err
				}
				flagsSet = true
				fmt.Println("Editor set to:", editorFlag)
			}

			if policyFlag != "" {
				policy, err := notes.ParseCollisionPolicy(policyFlag)
				if err != nil {
					return err
				}

				if err := config.Set(path, config.CollisionPolicyKey, string(policy)); err != nil {
					return err
				}
				flagsSet = true
				fmt.Println("Collision policy set to:", policy)
			}

			if flagsSet {
				return nil
			}

			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s\nrun `tino config init` to create one", config.ErrConfigNotFound, path)
			}

			cfg, err := config.Load(path)
			editor := cfg.GetEditor()
			if err != nil {
				// An invalid file still has to be editable.
				editor = config.Config{}.GetEditor()
			}

			return openInEditor(editor, path)
		},
	}

	cmd.Flags().StringP(config.EditorKey, "e", "", "Set the editor used to open notes")
	cmd.Flags().StringP(config.CollisionPolicyKey, "c", "", "Set what happens when a note name is taken (overwrite, fail, suffix)")

	cmd.AddCommand(configInitCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists at %s (use --force to replace it)", path)
			}

			dirs, editor, err := promptConfig()
			if err != nil {
				return err
			}

			if err := config.Write(path, dirs, editor); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			if err := config.EnsureDirs(dirs); err != nil {
				return err
			}

			color.New(color.FgGreen).Println("Config written to", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing config file")

	return cmd
}

func promptConfig() (note.Directories, string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, "", err
	}

	values := make(map[note.Type]*string, len(note.Types))
	fields := make([]huh.Field, 0, len(note.Types)+1)

	for _, t := range note.Types {
		value := filepath.Join(home, "para", strings.TrimSuffix(t.ConfigKey(), "_dir"))
		values[t] = &value

		fields = append(fields, huh.NewInput().
			Title(t.String()+" directory").
			Value(values[t]).
			Validate(func(s string) error {
				if s == "" {
					return note.ErrMissingDirectory
				}
				return nil
			}))
	}

	var editor string
	fields = append(fields, huh.NewInput().
		Title("Editor").
		Description("Leave empty to use $EDITOR").
		Value(&editor))

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(styles.FormTheme())
	if err := form.Run(); err != nil {
		return nil, "", err
	}

	dirs := note.Directories{}
	for _, t := range note.Types {
		dir, err := homedir.Expand(*values[t])
		if err != nil {
			return nil, "", err
		}
		dirs[t] = dir
	}

	if err := dirs.Validate(); err != nil {
		return nil, "", err
	}

	return dirs, editor, nil
}
