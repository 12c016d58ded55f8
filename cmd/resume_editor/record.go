package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-editor/internal/schemas"
	"github.com/jonathan/resume-editor/internal/store"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored résumé",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
		r := a.session.Current()
		if showJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}
		a.printer.PrintResume(r)
		return nil
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the résumé with an empty one",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
		r, err := a.session.Reset(cmd.Context())
		if err != nil {
			return err
		}
		a.show(cmd, r)
		return nil
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the résumé with a JSON file",
	Long:  "Validates the file against the résumé schema and replaces the stored résumé with it.",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		path := args[0]
		if err := schemas.ValidateResumeFile(path); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		imported, err := store.Decode(data)
		if err != nil {
			return err
		}

		r, err := a.session.Apply(cmd.Context(), func(types.Resume) (types.Resume, error) {
			return imported, nil
		})
		if err != nil {
			return err
		}
		a.show(cmd, r)
		return nil
	}),
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema import files must satisfy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), schemas.ResumeSchema())
		return err
	},
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the editable sections in navigator order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, s := range types.Sections() {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the document templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		newPrinter(cmd).PrintTemplates(types.Templates(), cfg.Template)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the stored JSON record")
	rootCmd.AddCommand(showCmd, resetCmd, importCmd, schemaCmd, sectionsCmd, templatesCmd)
}
