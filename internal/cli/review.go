package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dshills/critic/internal/config"
	"github.com/dshills/critic/internal/output"
	"github.com/dshills/critic/internal/providers"
	"github.com/dshills/critic/internal/review"
	"github.com/spf13/cobra"
)

// Shared review flags
var (
	flagLang     string
	flagProvider string
	flagModel    string
	flagFormat   string
	flagOut      string
	flagNoRedact bool
	flagNoCache  bool
	flagJobs     int
)

func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLang, "lang", "", "Language of the code (default: detect)")
	cmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (gemini, anthropic, openai, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown, html)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the response cache")
	cmd.Flags().IntVar(&flagJobs, "jobs", 0, "Number of files reviewed in parallel")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	} else if flagProvider != "" {
		// A provider switch without a model uses that provider's default.
		m["model"] = providers.DefaultModel(flagProvider)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagJobs > 0 {
		m["jobs"] = fmt.Sprintf("%d", flagJobs)
	}
	return m
}

// buildSubmissions turns inputs into review submissions with their declared
// language resolved.
func buildSubmissions(inputs []input) []review.Submission {
	subs := make([]review.Submission, len(inputs))
	for i, in := range inputs {
		subs[i] = review.Submission{
			Code:     in.content,
			Filename: in.name,
			Language: declaredLanguage(flagLang, in),
		}
	}
	return subs
}

func runReview(ctx context.Context, subs []review.Submission, cfg config.Config) {
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}
	if flagNoCache {
		cfg.Cache.Enabled = false
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	engine, err := review.NewEngine(cfg)
	if err != nil {
		fail(err)
		return
	}

	slog.Debug("starting review", "files", len(subs), "provider", cfg.Provider, "model", cfg.Model, "jobs", cfg.Jobs)
	results, err := engine.RunBatch(ctx, subs)
	if err != nil {
		fail(err)
		return
	}

	if err := output.WriteResults(results, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
}

var reviewCmd = &cobra.Command{
	Use:   "review [file...]",
	Short: "Review source files, or code from stdin",
	Long: "Review code using an LLM provider. Each file is reviewed separately; " +
		"with no files the code is read from stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(buildOverrides())
		if err != nil {
			return err
		}
		inputs, err := readInputs(cmd.InOrStdin(), args)
		if err != nil {
			fail(err)
			return nil
		}
		runReview(cmd.Context(), buildSubmissions(inputs), cfg)
		return nil
	},
}

func init() {
	addReviewFlags(reviewCmd)
}
