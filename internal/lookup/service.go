package lookup

import (
	"context"

	"bizstat/internal/api"
)

// DefaultBatchSize is the per-call limit of the NTS status API.
const DefaultBatchSize = 100

// StatusClient is the remote status-query dependency.
type StatusClient interface {
	Status(ctx context.Context, numbers []string) ([]api.StatusRecord, error)
}

type Service struct {
	client    StatusClient
	batchSize int
}

func New(client StatusClient, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Service{client: client, batchSize: batchSize}
}

// Lookup queries the registry for every given number, at most batchSize
// numbers per remote call, in input order. The first failing batch
// aborts the whole lookup: records accumulated from earlier batches are
// discarded and the batch error is returned as-is. There are no retries
// and no partial results.
func (s *Service) Lookup(ctx context.Context, numbers []string) ([]api.StatusRecord, error) {
	var records []api.StatusRecord
	for start := 0; start < len(numbers); start += s.batchSize {
		end := start + s.batchSize
		if end > len(numbers) {
			end = len(numbers)
		}
		batch, err := s.client.Status(ctx, numbers[start:end])
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}
	return records, nil
}
