// Package generate turns requirement text into test cases using the
// Gemini API. The package owns prompt assembly and response handling;
// rendering of structured records is left to the render package.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/edgecase"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/render"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// generateFunc abstracts the Gemini call so tests can substitute it.
// A nil schema requests free text; a non-nil schema forces JSON output.
type generateFunc func(ctx context.Context, prompt string, schema *genai.Schema) (string, error)

// Config holds generator configuration.
type Config struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
	MaxRetries      int
}

// Options controls a single generation call.
type Options struct {
	Format           render.Format
	Context          string // extra context folded into the prompt
	NumCases         int    // target number of test cases, default 10
	IncludeEdgeCases bool
	Structured       bool // request schema-constrained records instead of free text
}

// Service is the generation interface the CLI depends on.
type Service interface {
	Generate(ctx context.Context, requirement string, opts Options) (string, error)
	GenerateRecords(ctx context.Context, requirement string, opts Options) ([]render.TestCase, error)
}

// Generator generates test cases from requirements.
type Generator struct {
	cfg      Config
	analyzer *edgecase.Analyzer
	generate generateFunc
}

// New creates a Generator backed by the Gemini API.
// APIKey is required; other fields default sensibly.
func New(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.New("generate.New", apperrors.ErrInvalidInput,
			"GEMINI_API_KEY is required. Set the environment variable: export GEMINI_API_KEY=your-key")
	}
	applyDefaults(&cfg)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap("generate.New", err)
	}

	gen := func(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
		genCfg := &genai.GenerateContentConfig{
			Temperature:     &cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		}
		if schema != nil {
			genCfg.ResponseMIMEType = "application/json"
			genCfg.ResponseSchema = schema
		}
		result, err := client.Models.GenerateContent(ctx, cfg.Model, genai.Text(prompt), genCfg)
		if err != nil {
			return "", err
		}
		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("empty response from Gemini API")
		}
		return result.Candidates[0].Content.Parts[0].Text, nil
	}

	return &Generator{
		cfg:      cfg,
		analyzer: edgecase.New(),
		generate: gen,
	}, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = 4000
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 2
	}
}

// Generate produces an already-formatted document for the requirement.
// The model is asked to emit the target format directly; the returned
// text is passed through untouched.
func (g *Generator) Generate(ctx context.Context, requirement string, opts Options) (string, error) {
	if !opts.Format.IsValid() {
		return "", &render.UnsupportedFormatError{
			Format:    string(opts.Format),
			Supported: render.Formats(),
		}
	}
	opts.Structured = false

	prompt := g.buildPrompt(requirement, &opts)
	return g.callWithRetry(ctx, prompt, nil)
}

// GenerateRecords produces structured test-case records by forcing the
// model into a JSON schema and parsing the result. Callers render the
// records with the render package.
func (g *Generator) GenerateRecords(ctx context.Context, requirement string, opts Options) ([]render.TestCase, error) {
	opts.Structured = true

	prompt := g.buildPrompt(requirement, &opts)
	text, err := g.callWithRetry(ctx, prompt, recordsResponseSchema)
	if err != nil {
		return nil, err
	}

	var resp struct {
		TestCases []struct {
			Name  string   `json:"name"`
			Given []string `json:"given"`
			When  []string `json:"when"`
			Then  []string `json:"then"`
		} `json:"test_cases"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, apperrors.Wrap("generate.GenerateRecords", err)
	}

	var cases []render.TestCase
	for _, tc := range resp.TestCases {
		record := render.TestCase{
			Name:  strings.TrimSpace(tc.Name),
			Given: trimSteps(tc.Given),
			When:  trimSteps(tc.When),
			Then:  trimSteps(tc.Then),
		}
		if record.Name == "" && len(record.Given) == 0 && len(record.When) == 0 && len(record.Then) == 0 {
			continue
		}
		cases = append(cases, record)
	}
	return cases, nil
}

// EdgeCases returns the edge-case hints that would be folded into the
// prompt for this requirement.
func (g *Generator) EdgeCases(requirement string) []string {
	return g.analyzer.Detect(requirement)
}

func (g *Generator) buildPrompt(requirement string, opts *Options) string {
	if opts.NumCases <= 0 {
		opts.NumCases = 10
	}

	var edgeCases []string
	if opts.IncludeEdgeCases {
		edgeCases = g.analyzer.Detect(requirement)
	}
	return buildPrompt(requirement, *opts, edgeCases)
}

func (g *Generator) callWithRetry(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= g.cfg.MaxRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
		text, err := g.generate(callCtx, prompt, schema)
		cancel()

		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return "", apperrors.Wrapf("generate.callWithRetry", apperrors.ErrUnavailable,
		"all attempts failed: %v", lastErr)
}

func trimSteps(steps []string) []string {
	var out []string
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
