package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-editor/internal/sections"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/spf13/cobra"
)

var valueFile string

// valueArg returns the value from --file when given, otherwise args joined by spaces.
func valueArg(args []string) (string, error) {
	if valueFile == "" {
		return strings.Join(args, " "), nil
	}
	if len(args) > 0 {
		return "", fmt.Errorf("pass the value either as arguments or with --file, not both")
	}
	data, err := os.ReadFile(valueFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", valueFile, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a personal field, the summary or a flat list",
}

var setPersonalCmd = &cobra.Command{
	Use:       "personal <field> [value...]",
	Short:     "Set one personal info field",
	Long:      "Fields: " + strings.Join(sections.PersonalFields(), ", ") + ". An empty value clears the field.",
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: sections.PersonalFields(),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		value, err := valueArg(args[1:])
		if err != nil {
			return err
		}
		r, err := a.session.UpdatePersonal(cmd.Context(), args[0], value)
		if err != nil {
			return err
		}
		a.show(cmd, r)
		return nil
	}),
}

var setSummaryCmd = &cobra.Command{
	Use:   "summary [text...]",
	Short: "Replace the professional summary",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		text, err := valueArg(args)
		if err != nil {
			return err
		}
		r, err := a.session.SetSummary(cmd.Context(), text)
		if err != nil {
			return err
		}
		a.show(cmd, r)
		return nil
	}),
}

var setListCmd = &cobra.Command{
	Use:       "list <skills|certifications|languages> [item...]",
	Short:     "Replace a flat list",
	Long:      "Each argument becomes one entry. With --file, each line of the file becomes one entry.",
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: []string{string(types.SectionSkills), string(types.SectionCertifications), string(types.SectionLanguages)},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		items := args[1:]
		if valueFile != "" {
			text, err := valueArg(items)
			if err != nil {
				return err
			}
			items = sections.ParseBlock(text)
		}
		r, err := a.session.SetList(cmd.Context(), types.Section(args[0]), items)
		if err != nil {
			return err
		}
		a.show(cmd, r)
		return nil
	}),
}

var addCmd = &cobra.Command{
	Use:       "add <experience|education|projects>",
	Short:     "Append an empty item and print its id",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(types.SectionExperience), string(types.SectionEducation), string(types.SectionProjects)},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		id, _, err := a.session.AddItem(cmd.Context(), types.Section(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	}),
}

var updateCmd = &cobra.Command{
	Use:   "update <section> <id> <field> [value...]",
	Short: "Set one field of an item",
	Long: `Set one field of an experience, education or project item.
List fields (description, achievements) take one entry per line, technologies
are separated by ", ", and current takes true or false.`,
	Args: cobra.MinimumNArgs(3),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		section, id, field := types.Section(args[0]), args[1], args[2]
		value, err := valueArg(args[3:])
		if err != nil {
			return err
		}
		found, err := sections.HasItem(a.session.Current(), section, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no %s item with id %s", section, id)
		}
		r, err := a.session.UpdateItem(cmd.Context(), section, id, field, value)
		if err != nil {
			return err
		}
		a.show(cmd, r)
		return nil
	}),
}

var removeCmd = &cobra.Command{
	Use:   "remove <section> <id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		r, err := a.session.RemoveItem(cmd.Context(), types.Section(args[0]), args[1])
		if err != nil {
			return err
		}
		a.show(cmd, r)
		return nil
	}),
}

func init() {
	for _, cmd := range []*cobra.Command{setPersonalCmd, setSummaryCmd, setListCmd, updateCmd} {
		cmd.Flags().StringVarP(&valueFile, "file", "f", "", "Read the value from a file")
	}
	setCmd.AddCommand(setPersonalCmd, setSummaryCmd, setListCmd)
	rootCmd.AddCommand(setCmd, addCmd, updateCmd, removeCmd)
}
