package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
	"github.com/custodia-labs/cardledger/internal/core/ports/driving"
)

// Ensure Processor implements the interface.
var _ driving.ProcessorService = (*Processor)(nil)

// Processor feeds events through a parser into a ledger and renders the result.
type Processor struct {
	parser driving.EventParser
	ledger driving.LedgerService
	sink   driven.EventSink
	now    func() time.Time
}

// NewProcessor creates a processor. A nil sink discards messages.
func NewProcessor(parser driving.EventParser, ledger driving.LedgerService, sink driven.EventSink) *Processor {
	if sink == nil {
		sink = nopSink{}
	}
	return &Processor{
		parser: parser,
		ledger: ledger,
		sink:   sink,
		now:    time.Now,
	}
}

// Process applies events in order and renders the summary.
func (p *Processor) Process(ctx context.Context, events []string) (*domain.Report, error) {
	return p.ProcessSource(ctx, &sliceSource{events: events})
}

// ProcessSource applies every event from src in order and renders the summary.
// The first structural error stops the run and is returned as a *domain.EventError.
func (p *Processor) ProcessSource(ctx context.Context, src driven.EventSource) (*domain.Report, error) {
	if p.parser == nil || p.ledger == nil {
		return nil, domain.ErrNotConfigured
	}

	start := p.now()
	report := &domain.Report{}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, ok := src.Next()
		if !ok {
			break
		}
		report.Events++

		outcome, err := p.apply(ctx, raw)
		if err != nil {
			return nil, &domain.EventError{Index: report.Events, LineNo: position(src), Line: fmt.Sprint(raw), Err: err}
		}
		if outcome.IsDeclined() {
			report.Declined++
		} else {
			report.Applied++
		}
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}

	var err error
	if report.Summary, err = p.ledger.Summary(ctx); err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}
	if report.Lines, err = p.ledger.Lines(ctx); err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}
	report.Duration = p.now().Sub(start)

	p.sink.Info("Finished processing",
		"events", report.Events,
		"applied", report.Applied,
		"declined", report.Declined,
		"duration", report.Duration.String())
	return report, nil
}

// position returns the input line of the last event src yielded, or 0
// when src does not track lines.
func position(src driven.EventSource) int {
	if pos, ok := src.(driven.Positioner); ok {
		return pos.Position()
	}
	return 0
}

func (p *Processor) apply(ctx context.Context, raw any) (domain.Outcome, error) {
	event, err := p.parser.ParseAny(raw)
	if err != nil {
		return domain.Outcome{}, err
	}
	return p.ledger.Apply(ctx, event)
}

// sliceSource is an EventSource over an in-memory slice.
type sliceSource struct {
	events []string
	pos    int
}

func (s *sliceSource) Next() (any, bool) {
	if s.pos >= len(s.events) {
		return nil, false
	}
	event := s.events[s.pos]
	s.pos++
	return event, true
}

func (s *sliceSource) Err() error {
	return nil
}
