// Package main provides the resume_editor command: a form-based résumé editor
// with live preview, text generation and PDF export.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	storeKind  string
	storePath  string
	storeURL   string
	storeKey   string
	ephemeral  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_editor",
	Short: "Edit, preview and export a résumé",
	Long: `resume_editor keeps a single résumé in a local store and edits it section by section.
It renders a live HTML preview in one of three templates, exports PDF, HTML, LaTeX
or layout JSON, and can generate bullet points, summaries and ATS feedback.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	flags.StringVar(&storeKind, "store", "", "Store backend: file, memory, redis or postgres")
	flags.StringVar(&storePath, "store-path", "", "File store location")
	flags.StringVar(&storeURL, "store-url", "", "Redis or PostgreSQL URL")
	flags.StringVar(&storeKey, "key", "", "Key the résumé is stored under")
	flags.BoolVar(&ephemeral, "ephemeral", false, "Keep the résumé in memory only")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose output and debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
