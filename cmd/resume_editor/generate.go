package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate text with the configured model (requires GEMINI_API_KEY)",
}

var generateBulletsCmd = &cobra.Command{
	Use:   "bullets <experience-id>",
	Short: "Replace an experience item's description with generated bullet points",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		bullets, err := a.session.GenerateBullets(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, b := range bullets {
			fmt.Fprintln(cmd.OutOrStdout(), b)
		}
		return nil
	}),
}

var generateSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Replace the summary with one generated from experience and skills",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
		summary, err := a.session.GenerateSummary(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary)
		return nil
	}),
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print ATS feedback for the résumé",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
		feedback, err := a.session.Analyze(cmd.Context())
		if err != nil {
			return err
		}
		a.printer.PrintFeedback(feedback)
		return nil
	}),
}

func init() {
	generateCmd.AddCommand(generateBulletsCmd, generateSummaryCmd)
	rootCmd.AddCommand(generateCmd, analyzeCmd)
}
