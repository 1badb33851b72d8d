package ledger

import (
	"context"
	"redbank/core"
	"redbank/store/account"
	"redbank/store/event"
	"redbank/store/limit"
	"redbank/store/market"

	"github.com/fox-one/pkg/store/db"
)

type ledgerStore struct {
	db       *db.DB
	markets  market.Store
	accounts account.Store
	limits   limit.Store
	events   event.Store
}

// New ledger store over the market, account, loan limit and event tables
func New(db *db.DB) core.ILedgerStore {
	return &ledgerStore{
		db:       db,
		markets:  market.New(db),
		accounts: account.New(db),
		limits:   limit.New(db),
		events:   event.New(db),
	}
}

func (s *ledgerStore) Find(ctx context.Context, denom string) (*core.Market, error) {
	return s.markets.Find(ctx, denom)
}

func (s *ledgerStore) All(ctx context.Context) ([]*core.Market, error) {
	return s.markets.All(ctx)
}

func (s *ledgerStore) FindCollateral(ctx context.Context, userID, denom string) (*core.Collateral, error) {
	return s.accounts.FindCollateral(ctx, userID, denom)
}

func (s *ledgerStore) ListCollaterals(ctx context.Context, userID string) ([]*core.Collateral, error) {
	return s.accounts.ListCollaterals(ctx, userID)
}

func (s *ledgerStore) FindDebt(ctx context.Context, userID, denom string) (*core.Debt, error) {
	return s.accounts.FindDebt(ctx, userID, denom)
}

func (s *ledgerStore) ListDebts(ctx context.Context, userID string) ([]*core.Debt, error) {
	return s.accounts.ListDebts(ctx, userID)
}

func (s *ledgerStore) FindLoanLimit(ctx context.Context, userID, denom string) (*core.LoanLimit, error) {
	return s.limits.FindLoanLimit(ctx, userID, denom)
}

// Commit writes the whole changeset in one transaction, any optimistic
// lock failure rolls back everything
func (s *ledgerStore) Commit(ctx context.Context, cs *core.Changeset) error {
	if cs.IsEmpty() {
		return nil
	}

	return s.db.Tx(func(tx *db.DB) error {
		for _, m := range cs.Markets {
			if err := s.markets.Save(ctx, tx, m); err != nil {
				return err
			}
		}

		for _, c := range cs.Collaterals {
			if err := s.accounts.SaveCollateral(ctx, tx, c); err != nil {
				return err
			}
		}

		for _, d := range cs.Debts {
			if err := s.accounts.SaveDebt(ctx, tx, d); err != nil {
				return err
			}
		}

		for _, l := range cs.LoanLimits {
			if err := s.limits.Save(ctx, tx, l); err != nil {
				return err
			}
		}

		for _, e := range cs.Events {
			if err := s.events.Create(ctx, tx, e); err != nil {
				return err
			}
		}

		return nil
	})
}
