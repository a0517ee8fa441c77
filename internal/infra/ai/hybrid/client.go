package hybrid

import (
	"context"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
	"github.com/privacyshield/linkscanner/internal/infra/ai/openai"
)

// Client runs the local scorer first and feeds its score to the
// generative model as a prior. The generative verdict wins; the scorer
// only sharpens the prompt. Scorer failures are already absorbed by the
// runner's fail-open contract, so this path degrades to plain
// generative classification with prior 0.
type Client struct {
	Scorer     domain.Scorer
	Generative *openai.Client
}

func New(scorer domain.Scorer, generative *openai.Client) *Client {
	return &Client{Scorer: scorer, Generative: generative}
}

func (c *Client) Mock() bool { return false }

func (c *Client) Classify(ctx context.Context, url string, convo []domain.Turn, lang domain.Lang) (*domain.Report, error) {
	score, err := c.Scorer.Score(ctx, url)
	if err != nil {
		// Runner already fails open; an error here means the spawn
		// itself broke. The generative model can still answer.
		score = 0
	}
	return c.Generative.ClassifyWithPrior(ctx, url, convo, lang, domain.ScoreToPercent(score))
}
