package prepare

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
	"github.com/redreamality/benchmark-papers/internal/transport/openai"
)

// Classifier is the consumer interface for the LLM classification
// provider.
type Classifier interface {
	Classify(ctx context.Context, domain string, titles []string) ([]openai.Classification, error)
}

// ClassifyAll fills Category and Subcategory for every paper, batching
// requests per domain. Papers are mutated in place. A failed batch
// leaves its papers unclassified; the error is reported after all
// batches have run.
func ClassifyAll(ctx context.Context, c Classifier, papers []paper.Paper, batchSize int, logger *zap.Logger) error {
	if batchSize <= 0 {
		batchSize = 20
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// Group indexes by domain so the prompt can carry domain context.
	byDomain := make(map[string][]int)
	for i, p := range papers {
		byDomain[p.Domain] = append(byDomain[p.Domain], i)
	}

	var failed int
	for domain, idxs := range byDomain {
		for start := 0; start < len(idxs); start += batchSize {
			end := min(start+batchSize, len(idxs))
			batch := idxs[start:end]

			titles := make([]string, len(batch))
			for i, idx := range batch {
				titles[i] = papers[idx].Title
			}

			results, err := c.Classify(ctx, domain, titles)
			if err != nil {
				failed += len(batch)
				logger.Warn("classification batch failed",
					zap.String("domain", domain),
					zap.Int("titles", len(batch)),
					zap.Error(err),
				)
				continue
			}
			for i, idx := range batch {
				papers[idx].Category = results[i].Category
				papers[idx].Subcategory = results[i].Subcategory
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("classification incomplete: %d of %d papers unclassified", failed, len(papers))
	}
	return nil
}
