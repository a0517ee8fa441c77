package ai

import (
	"fmt"

	"github.com/privacyshield/linkscanner/internal/config"
	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
	"github.com/privacyshield/linkscanner/internal/infra/ai/hybrid"
	"github.com/privacyshield/linkscanner/internal/infra/ai/local"
	"github.com/privacyshield/linkscanner/internal/infra/ai/mock"
	"github.com/privacyshield/linkscanner/internal/infra/ai/openai"
)

// NewClassifier selects the classifier variant once, at construction.
// Call sites never branch on mode again.
func NewClassifier(cfg *config.Config, scorer domain.Scorer) (domain.Classifier, error) {
	mode := cfg.ResolveMode()
	switch mode {
	case config.ModeMock:
		return mock.New(), nil
	case config.ModeLocal:
		if scorer == nil {
			return nil, fmt.Errorf("local mode requires a scorer script")
		}
		return local.New(scorer), nil
	case config.ModeGenerative:
		if !cfg.HasRealKey() {
			return nil, fmt.Errorf("generative mode requires an OpenAI key")
		}
		return openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL), nil
	case config.ModeHybrid:
		if !cfg.HasRealKey() {
			return nil, fmt.Errorf("hybrid mode requires an OpenAI key")
		}
		if scorer == nil {
			return nil, fmt.Errorf("hybrid mode requires a scorer script")
		}
		gen := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		return hybrid.New(scorer, gen), nil
	default:
		return nil, fmt.Errorf("unknown classifier mode: %s", mode)
	}
}
