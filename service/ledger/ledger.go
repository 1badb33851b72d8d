package ledger

import (
	"context"
	"errors"
	"redbank/core"
	"redbank/internal/redbank"
	"redbank/pkg/number"
	"sync"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Option ledger option
type Option func(s *service)

// WithClock time source of accruals
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		s.clock = clock
	}
}

type service struct {
	// one operation at a time, queries may run together
	mux sync.RWMutex

	system    *core.System
	store     core.ILedgerStore
	oracle    core.IOracle
	addresses core.IAddressProvider
	clock     func() time.Time
}

// New new red bank ledger
func New(
	system *core.System,
	store core.ILedgerStore,
	oracle core.IOracle,
	addresses core.IAddressProvider,
	opts ...Option,
) core.ILedger {
	s := &service{
		system:    system,
		store:     store,
		oracle:    oracle,
		addresses: addresses,
		clock:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) closeFactor() decimal.Decimal {
	if s.system.CloseFactor.IsPositive() {
		return s.system.CloseFactor
	}

	return redbank.DefaultCloseFactor
}

func (s *service) clampPolicy() core.ClampPolicy {
	if s.system.ClampPolicy.Valid() {
		return s.system.ClampPolicy
	}

	return core.ClampPolicyReduce
}

// execute runs fn against a fresh session and commits its changeset,
// nothing is written when fn fails
func (s *service) execute(ctx context.Context, op string, fn func(ctx context.Context, sess *session) error) (*session, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	start := time.Now()
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithField("op", op))
	sess := newSession(s, s.clock(), true)

	err := fn(ctx, sess)
	if err == nil {
		err = sess.commit(ctx)
	}

	observe(op, start, err)
	if err != nil {
		logError(ctx, err)
		return nil, err
	}

	return sess, nil
}

// query runs fn against a read-only session, accruals stay in memory
func (s *service) query(ctx context.Context, fn func(ctx context.Context, sess *session) error) error {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return fn(ctx, newSession(s, s.clock(), false))
}

func logError(ctx context.Context, err error) {
	log := logger.FromContext(ctx).WithError(err)

	var code core.ErrorCode
	switch {
	case !errors.As(err, &code):
		log.Errorln("operation failed")
	case code.Kind().Fatal():
		log.WithField("code", code.Code()).Errorln("invariant violated")
	default:
		log.WithField("code", code.Code()).Infoln("operation rejected")
	}
}

// checkAmount positive integer within uint128
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.IsInteger() {
		return core.ErrInvalidAmount
	}

	if !number.IsUint128(amount) {
		return core.ErrOverflow
	}

	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
