package ledger

import (
	"context"
	"errors"
	"fmt"
	"redbank/core"
	"redbank/internal/redbank"
	"redbank/pkg/id"
	"sort"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type accountKey struct {
	userID string
	denom  string
}

// session candidate state of one operation. Every entity is loaded at most
// once, so an operation touching the same record twice sees its own writes.
type session struct {
	s       *service
	now     time.Time
	persist bool
	traceID string

	markets     map[string]*core.Market
	collaterals map[accountKey]*core.Collateral
	debts       map[accountKey]*core.Debt
	limits      map[accountKey]*core.LoanLimit

	// write order of the changeset
	touchedMarkets     []string
	touchedCollaterals []accountKey
	touchedDebts       []accountKey
	touchedLimits      []accountKey
	touched            map[string]bool

	changes []*core.BalanceChange
	events  []*core.Event
}

func newSession(s *service, now time.Time, persist bool) *session {
	return &session{
		s:           s,
		now:         now,
		persist:     persist,
		traceID:     id.GenTraceID(),
		markets:     make(map[string]*core.Market),
		collaterals: make(map[accountKey]*core.Collateral),
		debts:       make(map[accountKey]*core.Debt),
		limits:      make(map[accountKey]*core.LoanLimit),
		touched:     make(map[string]bool),
	}
}

// market loads and accrues the market of denom, ok is false when the denom is unknown
func (sess *session) market(ctx context.Context, denom string) (*core.Market, bool, error) {
	if m, ok := sess.markets[denom]; ok {
		return m, m.ID > 0, nil
	}

	m, err := sess.s.store.Find(ctx, denom)
	if err != nil {
		return nil, false, err
	}

	sess.markets[denom] = m
	if m.ID == 0 {
		return m, false, nil
	}

	if err := sess.accrue(ctx, m); err != nil {
		return nil, false, err
	}

	return m, true, nil
}

// mustMarket market of denom or code when unknown
func (sess *session) mustMarket(ctx context.Context, denom string, code core.ErrorCode) (*core.Market, error) {
	m, ok, err := sess.market(ctx, denom)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("market %s: %w", denom, code)
	}

	return m, nil
}

// accrue compounds the market indexes and, when persisting, mints the
// reserve share to the rewards collector. Without a resolvable collector the
// share is kept on the market as pending reserve.
func (sess *session) accrue(ctx context.Context, m *core.Market) error {
	if m.IndexesLastUpdated == sess.now.Unix() {
		return nil
	}

	reserve, err := redbank.AccrueInterest(m, sess.now)
	if err != nil {
		return fmt.Errorf("accrue %s at %d, last updated %d: %w", m.Denom, sess.now.Unix(), m.IndexesLastUpdated, err)
	}

	sess.touchMarket(m)
	if !sess.persist {
		return nil
	}

	scaled := m.PendingReserveScaled.Add(redbank.ScaledLiquidity(reserve, m.LiquidityIndex))
	if !scaled.IsPositive() {
		return nil
	}

	log := logger.FromContext(ctx).WithField("denom", m.Denom)

	collector, err := sess.s.addresses.Resolve(ctx, core.AddressTypeRewardsCollector)
	if err != nil {
		log.WithError(err).Infoln("reserve share kept pending:", scaled)
		m.PendingReserveScaled = scaled
		return nil
	}

	c, err := sess.collateral(ctx, collector, m.Denom)
	if err != nil {
		return err
	}

	if c.ID == 0 && !c.AmountScaled.IsPositive() {
		c.Enabled = true
	}

	m.PendingReserveScaled = decimal.Zero
	log.Debugln("reserve share minted:", scaled)
	return sess.increaseCollateral(m, c, scaled)
}

func (sess *session) collateral(ctx context.Context, userID, denom string) (*core.Collateral, error) {
	key := accountKey{userID, denom}
	if c, ok := sess.collaterals[key]; ok {
		return c, nil
	}

	c, err := sess.s.store.FindCollateral(ctx, userID, denom)
	if err != nil {
		return nil, err
	}

	sess.collaterals[key] = c
	return c, nil
}

func (sess *session) debt(ctx context.Context, userID, denom string) (*core.Debt, error) {
	key := accountKey{userID, denom}
	if d, ok := sess.debts[key]; ok {
		return d, nil
	}

	d, err := sess.s.store.FindDebt(ctx, userID, denom)
	if err != nil {
		return nil, err
	}

	sess.debts[key] = d
	return d, nil
}

func (sess *session) loanLimit(ctx context.Context, userID, denom string) (*core.LoanLimit, error) {
	key := accountKey{userID, denom}
	if l, ok := sess.limits[key]; ok {
		return l, nil
	}

	l, err := sess.s.store.FindLoanLimit(ctx, userID, denom)
	if err != nil {
		return nil, err
	}

	sess.limits[key] = l
	return l, nil
}

func (sess *session) touchMarket(m *core.Market) {
	if k := "m:" + m.Denom; !sess.touched[k] {
		sess.touched[k] = true
		sess.touchedMarkets = append(sess.touchedMarkets, m.Denom)
	}
}

func (sess *session) touchCollateral(c *core.Collateral) {
	if k := "c:" + c.UserID + ":" + c.Denom; !sess.touched[k] {
		sess.touched[k] = true
		sess.touchedCollaterals = append(sess.touchedCollaterals, accountKey{c.UserID, c.Denom})
	}
}

func (sess *session) touchDebt(d *core.Debt) {
	if k := "d:" + d.UserID + ":" + d.Denom; !sess.touched[k] {
		sess.touched[k] = true
		sess.touchedDebts = append(sess.touchedDebts, accountKey{d.UserID, d.Denom})
	}
}

func (sess *session) touchLimit(l *core.LoanLimit) {
	if k := "l:" + l.UserID + ":" + l.Denom; !sess.touched[k] {
		sess.touched[k] = true
		sess.touchedLimits = append(sess.touchedLimits, accountKey{l.UserID, l.Denom})
	}
}

func (sess *session) increaseCollateral(m *core.Market, c *core.Collateral, scaled decimal.Decimal) error {
	return sess.moveCollateral(m, c, scaled, scaled)
}

func (sess *session) decreaseCollateral(m *core.Market, c *core.Collateral, scaled decimal.Decimal) error {
	return sess.moveCollateral(m, c, scaled.Neg(), scaled.Neg())
}

// moveCollateral adds delta to the user's scaled collateral and totalDelta to the market total
func (sess *session) moveCollateral(m *core.Market, c *core.Collateral, delta, totalDelta decimal.Decimal) error {
	after := c.AmountScaled.Add(delta)
	total := m.ScaledLiquidityTotal.Add(totalDelta)
	if after.IsNegative() || total.IsNegative() {
		return fmt.Errorf("collateral %s of %s: %w", c.Denom, c.UserID, core.ErrUnderflow)
	}

	sess.changes = append(sess.changes, &core.BalanceChange{
		UserID:            c.UserID,
		Denom:             c.Denom,
		Kind:              core.BalanceKindCollateral,
		ScaledBefore:      c.AmountScaled,
		TotalScaledBefore: m.ScaledLiquidityTotal,
		ScaledAfter:       after,
	})

	c.AmountScaled = after
	m.ScaledLiquidityTotal = total
	sess.touchCollateral(c)
	sess.touchMarket(m)
	return nil
}

func (sess *session) changeDebt(m *core.Market, d *core.Debt, delta decimal.Decimal) error {
	after := d.AmountScaled.Add(delta)
	total := m.ScaledDebtTotal.Add(delta)
	if after.IsNegative() || total.IsNegative() {
		return fmt.Errorf("debt %s of %s: %w", d.Denom, d.UserID, core.ErrUnderflow)
	}

	sess.changes = append(sess.changes, &core.BalanceChange{
		UserID:            d.UserID,
		Denom:             d.Denom,
		Kind:              core.BalanceKindDebt,
		ScaledBefore:      d.AmountScaled,
		TotalScaledBefore: m.ScaledDebtTotal,
		ScaledAfter:       after,
	})

	d.AmountScaled = after
	m.ScaledDebtTotal = total
	sess.touchDebt(d)
	sess.touchMarket(m)
	return nil
}

// position of the user against the candidate state, prices are queried fresh
func (sess *session) position(ctx context.Context, userID string) (*core.UserPosition, error) {
	collaterals, debts, err := sess.accounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	assets := make(map[string]*redbank.Asset)
	asset := func(denom string) (*redbank.Asset, error) {
		if a, ok := assets[denom]; ok {
			return a, nil
		}

		m, err := sess.mustMarket(ctx, denom, core.ErrMarketNotFound)
		if err != nil {
			return nil, err
		}

		a := &redbank.Asset{
			Denom:                denom,
			MaxLoanToValue:       m.MaxLoanToValue,
			LiquidationThreshold: m.LiquidationThreshold,
			Collateral:           decimal.Zero,
			Debt:                 decimal.Zero,
		}
		assets[denom] = a
		return a, nil
	}

	for _, c := range collaterals {
		a, err := asset(c.Denom)
		if err != nil {
			return nil, err
		}

		a.Collateral = redbank.UnderlyingLiquidity(c.AmountScaled, sess.markets[c.Denom].LiquidityIndex)
		a.CollateralEnabled = c.Enabled
	}

	for _, d := range debts {
		a, err := asset(d.Denom)
		if err != nil {
			return nil, err
		}

		a.Debt = redbank.UnderlyingDebt(d.AmountScaled, sess.markets[d.Denom].BorrowIndex)
		a.Uncollateralized = d.Uncollateralized
	}

	list := make([]*redbank.Asset, 0, len(assets))
	for _, a := range assets {
		valued := (a.CollateralEnabled && a.Collateral.IsPositive()) || (!a.Uncollateralized && a.Debt.IsPositive())
		if !valued {
			continue
		}

		price, err := sess.s.oracle.Price(ctx, a.Denom)
		if err != nil {
			return nil, err
		}

		if !price.IsPositive() {
			return nil, fmt.Errorf("price of %s: %w", a.Denom, core.ErrInvalidPrice)
		}

		a.Price = price
		list = append(list, a)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Denom < list[j].Denom
	})

	return redbank.Position(list), nil
}

// accounts stored entries of the user overlaid with the session's candidates
func (sess *session) accounts(ctx context.Context, userID string) ([]*core.Collateral, []*core.Debt, error) {
	storedCollaterals, err := sess.s.store.ListCollaterals(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	for _, c := range storedCollaterals {
		if _, ok := sess.collaterals[accountKey{userID, c.Denom}]; !ok {
			sess.collaterals[accountKey{userID, c.Denom}] = c
		}
	}

	storedDebts, err := sess.s.store.ListDebts(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	for _, d := range storedDebts {
		if _, ok := sess.debts[accountKey{userID, d.Denom}]; !ok {
			sess.debts[accountKey{userID, d.Denom}] = d
		}
	}

	var collaterals []*core.Collateral
	for k, c := range sess.collaterals {
		if k.userID == userID && c.AmountScaled.IsPositive() {
			collaterals = append(collaterals, c)
		}
	}

	var debts []*core.Debt
	for k, d := range sess.debts {
		if k.userID == userID && d.AmountScaled.IsPositive() {
			debts = append(debts, d)
		}
	}

	sort.Slice(collaterals, func(i, j int) bool { return collaterals[i].Denom < collaterals[j].Denom })
	sort.Slice(debts, func(i, j int) bool { return debts[i].Denom < debts[j].Denom })
	return collaterals, debts, nil
}

// hasCollateralizedDebt user owes debt that counts toward the health factor
func (sess *session) hasCollateralizedDebt(ctx context.Context, userID string) (bool, error) {
	_, debts, err := sess.accounts(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, d := range debts {
		if !d.Uncollateralized {
			return true, nil
		}
	}

	return false, nil
}

func (sess *session) price(ctx context.Context, denom string) (decimal.Decimal, error) {
	price, err := sess.s.oracle.Price(ctx, denom)
	if err != nil {
		return decimal.Zero, err
	}

	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("price of %s: %w", denom, core.ErrInvalidPrice)
	}

	return price, nil
}

// emit records the operation event carrying every balance change so far
func (sess *session) emit(action core.ActionType, sender, userID, denom string, amount decimal.Decimal, extra core.EventExtraData) *core.Event {
	e := &core.Event{
		TraceID: sess.traceID,
		Action:  action,
		Sender:  sender,
		UserID:  userID,
		Denom:   denom,
		Amount:  amount,
	}

	e.SetChanges(sess.changes)
	e.SetExtraData(extra)
	sess.events = append(sess.events, e)
	return e
}

func (sess *session) changeset() *core.Changeset {
	cs := &core.Changeset{Events: sess.events}
	for _, denom := range sess.touchedMarkets {
		cs.Markets = append(cs.Markets, sess.markets[denom])
	}

	for _, k := range sess.touchedCollaterals {
		cs.Collaterals = append(cs.Collaterals, sess.collaterals[k])
	}

	for _, k := range sess.touchedDebts {
		cs.Debts = append(cs.Debts, sess.debts[k])
	}

	for _, k := range sess.touchedLimits {
		cs.LoanLimits = append(cs.LoanLimits, sess.limits[k])
	}

	return cs
}

func (sess *session) commit(ctx context.Context) error {
	if !sess.persist {
		return errors.New("commit on a read-only session")
	}

	for _, denom := range sess.touchedMarkets {
		m := sess.markets[denom]
		if m.LiquidityIndex.LessThan(decimal.New(1, 0)) || m.BorrowIndex.LessThan(decimal.New(1, 0)) ||
			m.ScaledLiquidityTotal.IsNegative() || m.ScaledDebtTotal.IsNegative() {
			return fmt.Errorf("market %s: %w", denom, core.ErrInvariantViolation)
		}
	}

	if err := sess.s.store.Commit(ctx, sess.changeset()); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("store.Commit")
		return err
	}

	return nil
}

func (sess *session) result(amount decimal.Decimal) *core.Result {
	return &core.Result{
		TraceID:          sess.traceID,
		Amount:           amount,
		Refund:           decimal.Zero,
		CollateralSeized: decimal.Zero,
		Events:           sess.events,
	}
}
