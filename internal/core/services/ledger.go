package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
	"github.com/custodia-labs/cardledger/internal/core/ports/driving"
)

// Ensure LedgerService implements the interface.
var _ driving.LedgerService = (*LedgerService)(nil)

// LedgerService applies open, charge and credit operations to an AccountStore.
// It is not safe for concurrent use; events are applied one at a time.
type LedgerService struct {
	store driven.AccountStore
	sink  driven.EventSink
}

// NewLedgerService creates a ledger over store. A nil sink discards messages.
func NewLedgerService(store driven.AccountStore, sink driven.EventSink) *LedgerService {
	if sink == nil {
		sink = nopSink{}
	}
	return &LedgerService{
		store: store,
		sink:  sink,
	}
}

// Open creates the account, replacing any existing account of the same name.
// A card that fails the Luhn check is stored with an invalid balance.
func (s *LedgerService) Open(ctx context.Context, name, card string, limit decimal.Decimal) (domain.Outcome, error) {
	if s.store == nil {
		return domain.Outcome{}, domain.ErrNotConfigured
	}
	s.sink.Info("Adding credit card", "name", name, "card", card, "limit", "$"+domain.FormatDecimal(limit))

	if limit.IsNegative() {
		return domain.Outcome{}, fmt.Errorf("%w: limit for %q must not be negative", domain.ErrValidation, name)
	}

	valid, err := domain.IsLuhnValid(card)
	if err != nil {
		return domain.Outcome{}, err
	}

	balance := domain.Active(decimal.Zero)
	if !valid {
		s.sink.Warn("Card number is not Luhn valid", "name", name, "card", card)
		balance = domain.Invalid()
	}

	if err := s.store.Save(ctx, domain.NewAccount(name, card, limit, balance)); err != nil {
		return domain.Outcome{}, fmt.Errorf("save account %q: %w", name, err)
	}
	return domain.Outcome{Status: domain.Applied, Balance: balance}, nil
}

// Charge adds amount to the balance. The charge is declined when the card
// is invalid or the new balance would exceed the limit.
func (s *LedgerService) Charge(ctx context.Context, name string, amount domain.Operand) (domain.Outcome, error) {
	s.sink.Info("Charging", "name", name, "amount", amount.String())

	account, err := s.lookup(ctx, name, amount)
	if err != nil {
		return domain.Outcome{}, err
	}

	declined, err := s.declineInvalidCard(account)
	if declined != nil || err != nil {
		return derefOutcome(declined), err
	}

	balance, _ := account.Balance.Amount()
	next := balance.Add(amount.Amount)
	if next.GreaterThan(account.Limit.Decimal) {
		s.sink.Warn("Charge declined", "name", name, "reason", domain.ReasonOverLimit.String(),
			"balance", account.Balance.String(), "limit", "$"+domain.FormatDecimal(account.Limit.Decimal))
		return domain.Outcome{Status: domain.Declined, Reason: domain.ReasonOverLimit, Balance: account.Balance}, nil
	}

	return s.update(ctx, account, next)
}

// Credit subtracts amount from the balance. Only an invalid card declines
// a credit; balances may go negative.
func (s *LedgerService) Credit(ctx context.Context, name string, amount domain.Operand) (domain.Outcome, error) {
	s.sink.Info("Crediting", "name", name, "amount", amount.String())

	account, err := s.lookup(ctx, name, amount)
	if err != nil {
		return domain.Outcome{}, err
	}

	declined, err := s.declineInvalidCard(account)
	if declined != nil || err != nil {
		return derefOutcome(declined), err
	}

	balance, _ := account.Balance.Amount()
	return s.update(ctx, account, balance.Sub(amount.Amount))
}

// Get retrieves an account and verifies its required fields are present.
func (s *LedgerService) Get(ctx context.Context, name string) (*domain.Account, error) {
	if s.store == nil {
		return nil, domain.ErrNotConfigured
	}
	account, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if missing := account.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: account %q lacks %s", domain.ErrMissingField, name, strings.Join(missing, ", "))
	}
	return account, nil
}

// Apply dispatches event to the operation it names.
func (s *LedgerService) Apply(ctx context.Context, event domain.Event) (domain.Outcome, error) {
	if len(event.Operands) != event.Op.Arity() {
		return domain.Outcome{}, fmt.Errorf("%w: %s takes %d operand(s), got %d",
			domain.ErrParse, event.Op, event.Op.Arity(), len(event.Operands))
	}

	switch event.Op {
	case domain.OpOpen:
		card, limit := event.Operands[0], event.Operands[1]
		if card.Kind != domain.OperandDigits {
			return domain.Outcome{}, fmt.Errorf("%w: card number must be a digit string, got %s",
				domain.ErrValidation, card)
		}
		if limit.Kind != domain.OperandAmount {
			return domain.Outcome{}, fmt.Errorf("%w: limit must be a dollar amount, got %s", domain.ErrType, limit)
		}
		return s.Open(ctx, event.Account, card.Digits, limit.Amount)
	case domain.OpCharge:
		return s.Charge(ctx, event.Account, event.Operands[0])
	case domain.OpCredit:
		return s.Credit(ctx, event.Account, event.Operands[0])
	default:
		return domain.Outcome{}, fmt.Errorf("%w: unknown operation %d", domain.ErrParse, event.Op)
	}
}

// Summary renders the ledger sorted by account name.
func (s *LedgerService) Summary(ctx context.Context) (string, error) {
	if s.store == nil {
		return "", domain.ErrNotConfigured
	}
	accounts, err := s.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list accounts: %w", err)
	}
	return RenderSummary(accounts), nil
}

// Lines returns the ledger as summary lines sorted by account name.
func (s *LedgerService) Lines(ctx context.Context) ([]domain.SummaryLine, error) {
	if s.store == nil {
		return nil, domain.ErrNotConfigured
	}
	accounts, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return SummaryLines(accounts), nil
}

// lookup runs the charge/credit preconditions in order:
// existence, field presence, then the amount's type.
func (s *LedgerService) lookup(ctx context.Context, name string, amount domain.Operand) (*domain.Account, error) {
	account, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if amount.Kind != domain.OperandAmount {
		return nil, fmt.Errorf("%w: amount for %q must be a dollar amount, got %s", domain.ErrType, name, amount)
	}
	return account, nil
}

// declineInvalidCard returns a declined outcome when the account's balance
// is frozen or its card no longer passes the Luhn check.
func (s *LedgerService) declineInvalidCard(account *domain.Account) (*domain.Outcome, error) {
	frozen := account.Balance.IsInvalid()
	if !frozen {
		valid, err := domain.IsLuhnValid(account.CardNumber)
		if err != nil {
			return nil, err
		}
		frozen = !valid
	}
	if !frozen {
		return nil, nil
	}
	s.sink.Warn("Operation declined", "name", account.Name, "reason", domain.ReasonInvalidCard.String())
	return &domain.Outcome{Status: domain.Declined, Reason: domain.ReasonInvalidCard, Balance: account.Balance}, nil
}

func (s *LedgerService) update(ctx context.Context, account *domain.Account, balance decimal.Decimal) (domain.Outcome, error) {
	account.Balance = domain.Active(balance)
	if err := s.store.Save(ctx, *account); err != nil {
		return domain.Outcome{}, fmt.Errorf("save account %q: %w", account.Name, err)
	}
	return domain.Outcome{Status: domain.Applied, Balance: account.Balance}, nil
}

func derefOutcome(o *domain.Outcome) domain.Outcome {
	if o == nil {
		return domain.Outcome{}
	}
	return *o
}

// nopSink discards messages.
type nopSink struct{}

func (nopSink) Info(string, ...any) {}
func (nopSink) Warn(string, ...any) {}
