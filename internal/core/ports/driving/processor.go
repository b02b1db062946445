package driving

import (
	"context"

	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
)

// ProcessorService runs a batch of events through the parser and ledger.
type ProcessorService interface {
	// Process applies events in order and returns the final report.
	// Processing stops at the first structural error.
	Process(ctx context.Context, events []string) (*domain.Report, error)

	// ProcessSource is Process over an EventSource.
	ProcessSource(ctx context.Context, src driven.EventSource) (*domain.Report, error)
}
