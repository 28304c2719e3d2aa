package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/ionut-t/tino/pkg/note"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the notes of every configured directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			entries, err := scanner(cfg)()
			if err != nil {
				return err
			}

			if typeFilter != "" {
				t, ok := parseType(typeFilter)
				if !ok {
					return fmt.Errorf("unknown note type %q", typeFilter)
				}
				entries = filterByType(entries, t)
			}

			if len(entries) == 0 {
				fmt.Fprintln(os.Stdout, "No notes found.")
				return nil
			}

			fmt.Fprintln(os.Stdout, renderTable(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "only list notes of this type (todo, idea, note, academic)")

	return cmd
}

func renderTable(entries []note.Entry) string {
	header := color.New(color.Bold).SprintFunc()

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow(header("TYPE"), header("NAME"), header("PATH"))

	for _, e := range entries {
		table.AddRow(e.Type.Tag(), e.Name, e.Path)
	}

	return table.String()
}

func parseType(s string) (note.Type, bool) {
	switch s {
	case "todo", "todos":
		return note.Todo, true
	case "idea", "ideas":
		return note.Idea, true
	case "note", "notes":
		return note.Note, true
	case "academic", "academic-note", "academic-notes":
		return note.AcademicNote, true
	}

	return 0, false
}

func filterByType(entries []note.Entry, t note.Type) []note.Entry {
	filtered := make([]note.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type == t {
			filtered = append(filtered, e)
		}
	}

	return filtered
}
