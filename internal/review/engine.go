package review

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/critic/internal/cache"
	"github.com/dshills/critic/internal/config"
	"github.com/dshills/critic/internal/feedback"
	"github.com/dshills/critic/internal/langdetect"
	"github.com/dshills/critic/internal/providers"
	"github.com/dshills/critic/internal/redact"
)

// Engine reviews submissions with one provider, model and cache.
type Engine struct {
	cfg      config.Config
	reviewer providers.Reviewer
	cache    *cache.Cache
}

// NewEngine creates the provider and cache named by cfg.
func NewEngine(cfg config.Config) (*Engine, error) {
	reviewer, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}
	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	return NewEngineWith(cfg, reviewer, c), nil
}

// NewEngineWith builds an Engine around an existing reviewer and cache.
// A nil cache disables caching.
func NewEngineWith(cfg config.Config, reviewer providers.Reviewer, c *cache.Cache) *Engine {
	if c == nil {
		c, _ = cache.New(false, "", 0)
	}
	if cfg.Model == "" {
		cfg.Model = providers.DefaultModel(cfg.Provider)
	}
	return &Engine{cfg: cfg, reviewer: reviewer, cache: c}
}

// Run reviews a single submission using the configuration.
func Run(ctx context.Context, sub Submission, cfg config.Config) (*Result, error) {
	e, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, sub)
}

// Run reviews one submission: resolve its language, redact secrets, consult
// the cache, call the provider and parse the feedback.
func (e *Engine) Run(ctx context.Context, sub Submission) (*Result, error) {
	startTime := time.Now()

	if strings.TrimSpace(sub.Code) == "" {
		return nil, fmt.Errorf("nothing to review: %s is empty", displayName(sub.Filename))
	}

	language, reason := resolveLanguage(sub)

	code := sub.Code
	var hits []redact.Hit
	if e.cfg.Privacy.RedactSecrets {
		code, hits = redact.Apply(code)
		if n := redact.Total(hits); n > 0 {
			slog.Info("redacted secrets before review", "file", sub.Filename, "count", n)
		}
	}

	result := &Result{
		Tool:           Tool,
		Version:        Version,
		RunID:          generateRunID(),
		Filename:       sub.Filename,
		Language:       language,
		LanguageReason: reason,
		Provider:       e.reviewer.Name(),
		Model:          e.cfg.Model,
		Redactions:     hits,
	}

	key := cache.BuildCacheKey(result.Provider, e.cfg.Model, language, code)
	if content, ok := e.cache.Get(key); ok {
		slog.Debug("cache hit", "file", sub.Filename, "provider", result.Provider)
		result.Cached = true
		result.Feedback = content
	} else {
		llmStart := time.Now()
		resp, err := e.reviewer.Review(ctx, providers.ReviewRequest{
			SystemPrompt: SystemPrompt(),
			UserPrompt:   BuildUserPrompt(code, sub.Filename, language),
			MaxTokens:    e.cfg.MaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("provider review: %w", err)
		}
		result.Timing.LLMMs = time.Since(llmStart).Milliseconds()
		result.Feedback = resp.Content
		result.TokensUsed = resp.TokensUsed

		if err := e.cache.Put(key, resp.Content); err != nil {
			slog.Warn("caching review failed", "err", err)
		}
	}

	result.Document = feedback.Parse(result.Feedback)
	result.Timing.TotalMs = time.Since(startTime).Milliseconds()
	return result, nil
}

// RunBatch reviews submissions concurrently, at most cfg.Jobs at a time.
// Results are returned in input order. The first error cancels the batch.
func (e *Engine) RunBatch(ctx context.Context, subs []Submission) ([]*Result, error) {
	results := make([]*Result, len(subs))
	if len(subs) == 0 {
		return results, nil
	}

	jobs := e.cfg.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(subs)))

	for i, sub := range subs {
		g.Go(func() error {
			res, err := e.Run(gctx, sub)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(sub.Filename), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// resolveLanguage returns the declared language, or the detected one with
// the rule that chose it.
func resolveLanguage(sub Submission) (string, string) {
	if lang := strings.TrimSpace(sub.Language); lang != "" {
		return lang, LanguageDeclared
	}
	det := langdetect.Detect(sub.Code)
	return det.Label, string(det.Reason)
}

func displayName(filename string) string {
	if filename == "" {
		return "<stdin>"
	}
	return filename
}

var runCounter atomic.Uint64

func generateRunID() string {
	seed := fmt.Sprintf("%d:%d", time.Now().UnixNano(), runCounter.Add(1))
	h := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", h[:16])
}
