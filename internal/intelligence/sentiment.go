package intelligence

import (
	"context"
	"strings"

	"github.com/finovahq/finova/internal/domain"
	"github.com/finovahq/finova/internal/llm"
)

// SentimentService infers the emotional tone of user input.
type SentimentService interface {
	// Analyze never fails: any remote error funnels into the local
	// keyword fallback.
	Analyze(ctx context.Context, text string) domain.Sentiment
}

type sentimentService struct {
	client llm.Client
}

// NewSentimentService creates a SentimentService that tries the remote
// classifier first and falls back to keyword counting.
func NewSentimentService(client llm.Client) SentimentService {
	return &sentimentService{client: client}
}

// labelAliases maps the hosted model's raw label names to sentiments.
// Unknown labels pass through upper-cased.
var labelAliases = map[string]domain.Sentiment{
	"LABEL_0": domain.SentimentNegative,
	"LABEL_1": domain.SentimentNeutral,
	"LABEL_2": domain.SentimentPositive,
}

func (s *sentimentService) Analyze(ctx context.Context, text string) domain.Sentiment {
	scores, err := s.client.Classify(ctx, text)
	if err != nil || len(scores) == 0 {
		return FallbackSentiment(text)
	}

	top := scores[0]
	for _, ls := range scores[1:] {
		if ls.Score > top.Score {
			top = ls
		}
	}
	if mapped, ok := labelAliases[top.Label]; ok {
		return mapped
	}
	return domain.Sentiment(strings.ToUpper(top.Label))
}

var (
	positiveWords = []string{"good", "great", "excellent", "happy", "satisfied", "love", "amazing"}
	negativeWords = []string{"bad", "terrible", "awful", "hate", "worried", "concerned", "problem"}
)

// FallbackSentiment counts positive and negative keyword occurrences in the
// lower-cased input. A strict majority decides; ties are NEUTRAL.
func FallbackSentiment(text string) domain.Sentiment {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return domain.SentimentPositive
	case neg > pos:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
