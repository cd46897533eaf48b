package sitegen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/octobees/lead-finder/internal/logging"
	"github.com/octobees/lead-finder/internal/metrics"
)

// Page sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Provider names.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// GenerateRequest describes the page to build.
type GenerateRequest struct {
	BusinessName string
	Niche        string
	Location     string
	APIKey       string
	Provider     string
}

// Page is a generated landing page.
type Page struct {
	HTML   string
	Source string
}

// Generator produces landing pages. It never fails: any provider error falls
// back to the procedural template.
type Generator struct {
	providers map[string]Provider
	fallback  *Fallback
	logger    *zap.Logger
}

// NewGenerator wires the known providers. Either provider may be nil.
func NewGenerator(openAI, gemini Provider, fallback *Fallback, logger *zap.Logger) *Generator {
	providers := map[string]Provider{}
	if openAI != nil {
		providers[ProviderOpenAI] = openAI
	}
	if gemini != nil {
		providers[ProviderGemini] = gemini
	}
	if fallback == nil {
		fallback = NewFallback("", nil)
	}
	return &Generator{providers: providers, fallback: fallback, logger: logging.OrNop(logger)}
}

// ProviderName maps request aliases onto a provider name.
func ProviderName(provider string) string {
	switch p := strings.ToLower(strings.TrimSpace(provider)); p {
	case "", "gpt", ProviderOpenAI:
		return ProviderOpenAI
	default:
		return p
	}
}

// Generate builds a page for req.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) Page {
	name := ProviderName(req.Provider)
	label := name
	if _, ok := g.providers[name]; !ok {
		label = "unsupported"
	}

	html, err := g.complete(ctx, name, req)
	if err != nil {
		g.logger.Warn("ai generation failed, using fallback template",
			zap.String("provider", name),
			zap.String("business", req.BusinessName),
			zap.Error(err),
		)
		metrics.ObserveSiteGeneration(label, SourceFallback)
		return Page{HTML: g.fallback.Render(req.BusinessName, req.Niche, req.Location), Source: SourceFallback}
	}
	metrics.ObserveSiteGeneration(label, SourceAI)
	return Page{HTML: html, Source: SourceAI}
}

func (g *Generator) complete(ctx context.Context, name string, req GenerateRequest) (string, error) {
	provider, ok := g.providers[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedProvider, name)
	}
	raw, err := provider.Complete(ctx, req.APIKey, BuildPrompt(req.BusinessName, req.Niche, req.Location))
	if err != nil {
		return "", err
	}
	html := CleanHTML(raw)
	if html == "" {
		return "", ErrEmptyResponse
	}
	return html, nil
}
