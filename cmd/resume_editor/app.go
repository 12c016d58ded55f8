package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/enrichment"
	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/observability"
	"github.com/jonathan/resume-editor/internal/store"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app is the per-invocation wiring shared by every command.
type app struct {
	cfg     config.Config
	logger  *logrus.Logger
	printer *observability.Printer
	session *editor.Session
	closers []io.Closer
}

// newCompleter builds the text generation backend. Commands that never
// generate text still work without an API key.
var newCompleter = func(ctx context.Context, cfg config.Config) (enrichment.Completer, io.Closer, error) {
	if cfg.APIKey == "" {
		return nil, nil, nil
	}
	llmConfig := llm.DefaultConfig()
	llmConfig.Temperature = cfg.Temperature

	tier, err := llm.ParseTier(cfg.ModelTier)
	if err != nil {
		return nil, nil, err
	}
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, err
	}
	completer := enrichment.NewLLMCompleter(client, tier)
	return completer, completer, nil
}

// resolveConfig layers CLI flags over config.Resolve.
func resolveConfig() (config.Config, error) {
	cfg, err := config.Resolve(configPath, os.Getenv)
	if err != nil {
		return config.Config{}, err
	}

	if storeKind != "" {
		cfg.StoreBackend = storeKind
	}
	if ephemeral {
		cfg.StoreBackend = store.KindMemory
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if storeURL != "" {
		cfg.StoreURL = storeURL
	}
	if storeKey != "" {
		cfg.StoreKey = storeKey
	}
	if verbose {
		cfg.Verbose = true
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a := &app{
		cfg:     cfg,
		logger:  observability.NewLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat),
		printer: newPrinter(cmd),
	}

	st, err := store.Open(ctx, store.Options{
		Kind: cfg.StoreBackend,
		Path: cfg.StorePath,
		URL:  cfg.StoreURL,
		Key:  cfg.StoreKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	completer, closer, err := newCompleter(ctx, cfg)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to create text generation client: %w", err)
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	opts := editor.Options{Logger: a.logger}
	if completer != nil {
		opts.Enricher = enrichment.New(completer)
	}
	a.session, err = editor.Open(ctx, st, opts)
	if err != nil {
		_ = st.Close()
		a.close()
		return nil, err
	}
	a.closers = append(a.closers, a.session)

	if corrupt := a.session.Corrupt(); corrupt != nil {
		a.printer.PrintCorruptState(corrupt)
	}
	a.logger.WithFields(logrus.Fields{
		"store": cfg.StoreBackend,
		"key":   cfg.StoreKey,
	}).Debug("session opened")
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.WithError(err).Warn("failed to close resource")
		}
	}
}

// withApp opens the session, runs fn and closes everything afterwards.
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd, args, a)
	}
}

// show prints the résumé after an edit, in full with --verbose.
func (a *app) show(cmd *cobra.Command, r types.Resume) {
	if a.cfg.Verbose {
		a.printer.PrintResume(r)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ saved")
}

func newPrinter(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.OutOrStdout())
}
