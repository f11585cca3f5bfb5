package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/apprise/internal/assess"
	"github.com/abhisek/apprise/internal/audit"
	"github.com/abhisek/apprise/internal/bank"
	"github.com/abhisek/apprise/internal/embed"
	"github.com/abhisek/apprise/internal/feedback"
	"github.com/abhisek/apprise/internal/index"
	"github.com/abhisek/apprise/internal/llm"
	"github.com/abhisek/apprise/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8000", "Address to listen on")
	serveCmd.Flags().Bool("watch", false, "Reload the question bank when the file changes")
	serveCmd.Flags().Bool("warm", true, "Build the embedding index at startup")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()
	ctx := cmd.Context()

	store, bankPath, err := loadStore(cmd, log)
	if err != nil {
		return err
	}

	auditStore, err := openAudit(cmd)
	if err != nil {
		return err
	}
	defer auditStore.Close()

	provider, err := llm.NewProvider(ctx, resolveLLMConfig(log), auditStore, log)
	if err != nil {
		return fmt.Errorf("create LLM provider: %w", err)
	}

	embedder, err := embed.New(ctx, embed.ConfigFromEnv())
	if err != nil {
		return fmt.Errorf("create embedder: %w", err)
	}
	log.Info("embedder ready", "model", embedder.ModelID(), "dimension", embedder.Dimension())

	ix := index.New(store, embedder, index.Config{}, log)
	if warm, _ := cmd.Flags().GetBool("warm"); warm {
		if err := ix.EnsureFresh(ctx); err != nil {
			// Searches will retry the build; start/submit do not need it.
			log.Warn("initial index build failed", "error", err)
		}
	}

	sampler := assess.NewSampler(store)
	fb := feedback.NewService(provider, feedback.DefaultConfig())
	srv := server.New(store, ix, sampler, fb, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		watcher := bank.NewWatcher(store, bankPath, log)
		go func() {
			if err := watcher.Watch(ctx); err != nil && ctx.Err() == nil {
				log.Error("bank watcher stopped", "error", err)
			}
		}()
	}

	addr, _ := cmd.Flags().GetString("addr")
	errc := make(chan error, 1)
	go func() { errc <- srv.Start(addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// resolveLLMConfig picks the LLM configuration: explicit APPRISE_* env
// settings win; otherwise standard provider key env vars are probed; with
// no key at all the mock provider keeps the server usable (feedback
// degrades to the deterministic fallback).
func resolveLLMConfig(log *slog.Logger) llm.Config {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil && hasExplicitLLMEnv() {
		return cfg
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered
	}
	log.Warn("no LLM API key found, narrative feedback will use the fallback text")
	cfg = llm.DefaultConfig()
	cfg.Provider = "mock"
	return cfg
}

func hasExplicitLLMEnv() bool {
	for _, name := range []string{
		"APPRISE_LLM_PROVIDER",
		"APPRISE_GEMINI_API_KEY",
		"APPRISE_OPENAI_API_KEY",
		"APPRISE_ANTHROPIC_API_KEY",
	} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// openAudit opens the audit database at --db, APPRISE_DB, or the default
// XDG data path.
func openAudit(cmd *cobra.Command) (*audit.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = os.Getenv("APPRISE_DB")
	}
	if path == "" {
		var err error
		path, err = audit.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	} else if err := audit.EnsureDir(path); err != nil {
		return nil, err
	}
	return audit.Open(path)
}
