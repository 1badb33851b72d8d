// Package memory in-process ledger, price and address stores
package memory

import (
	"context"
	"redbank/core"
	"sort"
	"sync"
	"time"

	"github.com/fox-one/pkg/store/db"
)

type accountKey struct {
	userID string
	denom  string
}

// Ledger in-memory ledger store and event outbox
type Ledger struct {
	mux         sync.RWMutex
	seq         uint64
	markets     map[string]*core.Market
	collaterals map[accountKey]*core.Collateral
	debts       map[accountKey]*core.Debt
	limits      map[accountKey]*core.LoanLimit
	events      []*core.Event
}

var (
	_ core.ILedgerStore = (*Ledger)(nil)
	_ core.IEventStore  = (*Ledger)(nil)
)

// NewLedger empty ledger store
func NewLedger() *Ledger {
	return &Ledger{
		markets:     make(map[string]*core.Market),
		collaterals: make(map[accountKey]*core.Collateral),
		debts:       make(map[accountKey]*core.Debt),
		limits:      make(map[accountKey]*core.LoanLimit),
	}
}

func (s *Ledger) Find(ctx context.Context, denom string) (*core.Market, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if m, ok := s.markets[denom]; ok {
		return m.Clone(), nil
	}

	return &core.Market{Denom: denom}, nil
}

func (s *Ledger) All(ctx context.Context) ([]*core.Market, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	markets := make([]*core.Market, 0, len(s.markets))
	for _, m := range s.markets {
		markets = append(markets, m.Clone())
	}

	sort.Slice(markets, func(i, j int) bool {
		return markets[i].Denom < markets[j].Denom
	})

	return markets, nil
}

func (s *Ledger) FindCollateral(ctx context.Context, userID, denom string) (*core.Collateral, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if c, ok := s.collaterals[accountKey{userID, denom}]; ok {
		return c.Clone(), nil
	}

	return &core.Collateral{UserID: userID, Denom: denom}, nil
}

func (s *Ledger) ListCollaterals(ctx context.Context, userID string) ([]*core.Collateral, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	var collaterals []*core.Collateral
	for k, c := range s.collaterals {
		if k.userID == userID {
			collaterals = append(collaterals, c.Clone())
		}
	}

	sort.Slice(collaterals, func(i, j int) bool {
		return collaterals[i].Denom < collaterals[j].Denom
	})

	return collaterals, nil
}

func (s *Ledger) FindDebt(ctx context.Context, userID, denom string) (*core.Debt, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if d, ok := s.debts[accountKey{userID, denom}]; ok {
		return d.Clone(), nil
	}

	return &core.Debt{UserID: userID, Denom: denom}, nil
}

func (s *Ledger) ListDebts(ctx context.Context, userID string) ([]*core.Debt, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	var debts []*core.Debt
	for k, d := range s.debts {
		if k.userID == userID {
			debts = append(debts, d.Clone())
		}
	}

	sort.Slice(debts, func(i, j int) bool {
		return debts[i].Denom < debts[j].Denom
	})

	return debts, nil
}

func (s *Ledger) FindLoanLimit(ctx context.Context, userID, denom string) (*core.LoanLimit, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if l, ok := s.limits[accountKey{userID, denom}]; ok {
		return l.Clone(), nil
	}

	return &core.LoanLimit{UserID: userID, Denom: denom}, nil
}

// Commit checks every version before applying anything
func (s *Ledger) Commit(ctx context.Context, cs *core.Changeset) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := s.checkVersions(cs); err != nil {
		return err
	}

	now := time.Now()
	for _, m := range cs.Markets {
		m = m.Clone()
		if m.ID == 0 {
			m.ID = s.nextID()
			m.CreatedAt = now
		}
		m.Version++
		m.UpdatedAt = now
		s.markets[m.Denom] = m
	}

	for _, c := range cs.Collaterals {
		key := accountKey{c.UserID, c.Denom}
		if !c.AmountScaled.IsPositive() {
			delete(s.collaterals, key)
			continue
		}

		c = c.Clone()
		if c.ID == 0 {
			c.ID = s.nextID()
			c.CreatedAt = now
		}
		c.Version++
		c.UpdatedAt = now
		s.collaterals[key] = c
	}

	for _, d := range cs.Debts {
		key := accountKey{d.UserID, d.Denom}
		if !d.AmountScaled.IsPositive() {
			delete(s.debts, key)
			continue
		}

		d = d.Clone()
		if d.ID == 0 {
			d.ID = s.nextID()
			d.CreatedAt = now
		}
		d.Version++
		d.UpdatedAt = now
		s.debts[key] = d
	}

	for _, l := range cs.LoanLimits {
		l = l.Clone()
		if l.ID == 0 {
			l.ID = s.nextID()
			l.CreatedAt = now
		}
		l.Version++
		l.UpdatedAt = now
		s.limits[accountKey{l.UserID, l.Denom}] = l
	}

	for _, e := range cs.Events {
		ev := *e
		ev.ID = s.nextID()
		ev.CreatedAt = now
		s.events = append(s.events, &ev)
	}

	return nil
}

func (s *Ledger) checkVersions(cs *core.Changeset) error {
	for _, m := range cs.Markets {
		current, ok := s.markets[m.Denom]
		if !sameVersion(m.ID, m.Version, ok, func() (uint64, int64) { return current.ID, current.Version }) {
			return db.ErrOptimisticLock
		}
	}

	for _, c := range cs.Collaterals {
		current, ok := s.collaterals[accountKey{c.UserID, c.Denom}]
		if !sameVersion(c.ID, c.Version, ok, func() (uint64, int64) { return current.ID, current.Version }) {
			return db.ErrOptimisticLock
		}
	}

	for _, d := range cs.Debts {
		current, ok := s.debts[accountKey{d.UserID, d.Denom}]
		if !sameVersion(d.ID, d.Version, ok, func() (uint64, int64) { return current.ID, current.Version }) {
			return db.ErrOptimisticLock
		}
	}

	for _, l := range cs.LoanLimits {
		current, ok := s.limits[accountKey{l.UserID, l.Denom}]
		if !sameVersion(l.ID, l.Version, ok, func() (uint64, int64) { return current.ID, current.Version }) {
			return db.ErrOptimisticLock
		}
	}

	return nil
}

// a record with ID 0 must not exist yet, others must match the stored version
func sameVersion(id uint64, version int64, exists bool, current func() (uint64, int64)) bool {
	if id == 0 {
		return !exists
	}

	if !exists {
		return false
	}

	currentID, currentVersion := current()
	return currentID == id && currentVersion == version
}

func (s *Ledger) nextID() uint64 {
	s.seq++
	return s.seq
}

func (s *Ledger) ListPending(ctx context.Context, limit int) ([]*core.Event, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	var events []*core.Event
	for _, e := range s.events {
		if limit > 0 && len(events) >= limit {
			break
		}

		if !e.Notified {
			ev := *e
			events = append(events, &ev)
		}
	}

	return events, nil
}

func (s *Ledger) ListByUser(ctx context.Context, userID string, fromID uint64, limit int) ([]*core.Event, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	var events []*core.Event
	for _, e := range s.events {
		if limit > 0 && len(events) >= limit {
			break
		}

		if e.UserID == userID && e.ID > fromID {
			ev := *e
			events = append(events, &ev)
		}
	}

	return events, nil
}

func (s *Ledger) MarkNotified(ctx context.Context, ids []uint64) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	set := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	for _, e := range s.events {
		if set[e.ID] {
			e.Notified = true
		}
	}

	return nil
}
