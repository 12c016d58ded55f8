package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/spf13/cobra"
)

var (
	docTemplate   string
	docOutput     string
	exportFormat  string
	exportAll     bool
	exportTeXFile string
)

// selectedTemplate resolves --template, falling back to the configured default.
func selectedTemplate(a *app) (types.Template, error) {
	key := docTemplate
	if key == "" {
		key = a.cfg.Template
	}
	t, ok := types.LookupTemplate(key)
	if !ok {
		return types.Template{}, fmt.Errorf("unknown template: %s", key)
	}
	return t, nil
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the HTML preview",
	Long:  "Renders the preview document. It is written to --out, or to stdout when --out is not set.",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
		t, err := selectedTemplate(a)
		if err != nil {
			return err
		}
		html, err := rendering.RenderPreview(rendering.Compose(a.session.Current(), t))
		if err != nil {
			return err
		}
		if docOutput == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		}
		if err := os.WriteFile(docOutput, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", docOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ preview written to %s\n", docOutput)
		return nil
	}),
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the résumé as PDF, HTML, LaTeX or layout JSON",
	Long: `Export writes the composed document to --out. Without --out the file is
named after the résumé owner, e.g. jane-doe-resume.pdf. With --all every format
is written into the --out directory.`,
	Args: cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
		t, err := selectedTemplate(a)
		if err != nil {
			return err
		}
		texTemplate := exportTeXFile
		if texTemplate == "" {
			texTemplate = a.cfg.TeXTemplate
		}
		opts := rendering.ExportOptions{
			PDF:         rendering.NewChromePDFRenderer(a.cfg.ChromePath),
			TeXTemplate: texTemplate,
		}
		layout := rendering.Compose(a.session.Current(), t)

		if exportAll {
			artifacts, err := rendering.ExportAll(cmd.Context(), layout, rendering.Formats(), opts)
			if err != nil {
				return err
			}
			dir := docOutput
			if dir == "" {
				dir = "."
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			for _, artifact := range artifacts {
				if err := writeArtifact(cmd, filepath.Join(dir, artifact.Filename), artifact); err != nil {
					return err
				}
			}
			return nil
		}

		format, err := rendering.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		artifact, err := rendering.ExportWith(cmd.Context(), layout, format, opts)
		if err != nil {
			return err
		}
		path := docOutput
		if path == "" {
			path = artifact.Filename
		}
		return writeArtifact(cmd, path, artifact)
	}),
}

func writeArtifact(cmd *cobra.Command, path string, artifact rendering.Artifact) error {
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s written to %s\n", artifact.Format, path)
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{previewCmd, exportCmd} {
		cmd.Flags().StringVarP(&docTemplate, "template", "t", "", "Template key (modern, classic, minimal)")
		cmd.Flags().StringVarP(&docOutput, "out", "o", "", "Output path")
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "Export format: pdf, html, tex or json")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every format")
	exportCmd.Flags().StringVar(&exportTeXFile, "tex-template", "", "Custom LaTeX template file")
	rootCmd.AddCommand(previewCmd, exportCmd)
}
