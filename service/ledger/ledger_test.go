package ledger

import (
	"context"
	"redbank/core"
	"redbank/pkg/number"
	"redbank/service/address"
	"redbank/service/oracle"
	"redbank/store/memory"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	owner     = "owner"
	admin     = "admin"
	collector = "collector"
)

type fixture struct {
	ctx      context.Context
	now      time.Time
	system   *core.System
	store    *memory.Ledger
	prices   *memory.Prices
	registry *address.Registry
	ledger   core.ILedger
}

func defaultParams() core.AssetParams {
	return core.AssetParams{
		ReserveFactor:        number.Decimal("0.2"),
		MaxLoanToValue:       number.Decimal("0.6"),
		LiquidationThreshold: number.Decimal("0.8"),
		LiquidationBonus:     number.Decimal("0.1"),
		InterestRateModel: core.InterestRateModel{
			OptimalUtilizationRate: number.Decimal("0.1"),
			Base:                   number.Decimal("0.3"),
			Slope1:                 number.Decimal("0.25"),
			Slope2:                 number.Decimal("0.3"),
		},
		DepositEnabled: true,
		BorrowEnabled:  true,
	}
}

// uosmo and uatom markets priced at 1, bob supplies 10000 uatom
func newFixture(t *testing.T, opts ...func(*core.System)) *fixture {
	f := newFixtureWithoutCollector(t, opts...)
	require.NoError(t, f.registry.Set(f.ctx, owner, core.AddressTypeRewardsCollector, collector))
	return f
}

func newFixtureWithoutCollector(t *testing.T, opts ...func(*core.System)) *fixture {
	f := &fixture{
		ctx: context.Background(),
		now: time.Unix(1600000000, 0),
		system: &core.System{
			Owner:       owner,
			Admins:      []string{admin},
			CloseFactor: number.Decimal("0.8"),
			ClampPolicy: core.ClampPolicyReduce,
		},
		store:  memory.NewLedger(),
		prices: memory.NewPrices(),
	}

	for _, opt := range opts {
		opt(f.system)
	}

	f.registry = address.New(f.system, memory.NewAddresses())
	f.ledger = New(f.system, f.store, oracle.NewFixed("uusd", f.prices), f.registry, WithClock(func() time.Time {
		return f.now
	}))

	for _, denom := range []string{"uosmo", "uatom"} {
		_, err := f.ledger.InitAsset(f.ctx, owner, denom, defaultParams())
		require.NoError(t, err)
		f.setPrice(t, denom, "1")
	}

	f.deposit(t, "bob", "uatom", "10000")
	return f
}

func (f *fixture) setPrice(t *testing.T, denom, price string) {
	require.NoError(t, oracle.SetPrice(f.ctx, f.system, f.prices, owner, denom, number.Decimal(price)))
}

func (f *fixture) deposit(t *testing.T, user, denom, amount string) *core.Result {
	r, err := f.ledger.Deposit(f.ctx, &core.DepositRequest{Sender: user, Denom: denom, Amount: number.Decimal(amount)})
	require.NoError(t, err)
	return r
}

func (f *fixture) borrow(user, denom, amount string) (*core.Result, error) {
	return f.ledger.Borrow(f.ctx, &core.BorrowRequest{User: user, Denom: denom, Amount: number.Decimal(amount)})
}

func (f *fixture) collateral(t *testing.T, user, denom string) *core.UserCollateral {
	c, err := f.ledger.UserCollateral(f.ctx, user, denom)
	require.NoError(t, err)
	return c
}

func (f *fixture) debt(t *testing.T, user, denom string) *core.UserDebt {
	d, err := f.ledger.UserDebt(f.ctx, user, denom)
	require.NoError(t, err)
	return d
}

func (f *fixture) market(t *testing.T, denom string) *core.MarketInfo {
	m, err := f.ledger.Market(f.ctx, denom)
	require.NoError(t, err)
	return m
}

func (f *fixture) position(t *testing.T, user string) *core.UserPosition {
	p, err := f.ledger.UserPosition(f.ctx, user)
	require.NoError(t, err)
	return p
}

func TestInitAsset(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.InitAsset(f.ctx, "mallory", "uusdc", defaultParams())
	assert.ErrorIs(t, err, core.ErrUnauthorized)

	_, err = f.ledger.InitAsset(f.ctx, owner, "uosmo", defaultParams())
	assert.ErrorIs(t, err, core.ErrAssetAlreadyInitialized)

	params := defaultParams()
	params.MaxLoanToValue = number.Decimal("0.9")
	_, err = f.ledger.InitAsset(f.ctx, owner, "uusdc", params)
	assert.ErrorIs(t, err, core.ErrInvalidParams)
	assert.Equal(t, core.KindConfig, core.ErrorKindOf(err))

	m, err := f.ledger.InitAsset(f.ctx, owner, "uusdc", defaultParams())
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	assert.Equal(t, "1", m.LiquidityIndex.String())
	assert.Equal(t, "1", m.BorrowIndex.String())
	assert.Equal(t, f.now.Unix(), m.IndexesLastUpdated)

	markets, err := f.ledger.Markets(f.ctx)
	require.NoError(t, err)
	assert.Len(t, markets, 3)
}

func TestDeposit(t *testing.T) {
	f := newFixture(t)

	r := f.deposit(t, "alice", "uosmo", "1000")
	assert.Equal(t, "1000", r.Amount.String())
	require.Len(t, r.Events, 1)

	c := f.collateral(t, "alice", "uosmo")
	assert.Equal(t, "1000", c.Amount.String())
	assert.Equal(t, "1000000000", c.AmountScaled.String())
	assert.True(t, c.Enabled, "first deposit enables the collateral")

	t.Run("sequential deposits add up", func(t *testing.T) {
		f.deposit(t, "alice", "uosmo", "1000")
		c := f.collateral(t, "alice", "uosmo")
		assert.Equal(t, "2000000000", c.AmountScaled.String())
		assert.Equal(t, "2000000000", f.market(t, "uosmo").ScaledLiquidityTotal.String())
	})

	t.Run("on behalf of", func(t *testing.T) {
		_, err := f.ledger.Deposit(f.ctx, &core.DepositRequest{
			Sender:     "alice",
			OnBehalfOf: "carol",
			Denom:      "uosmo",
			Amount:     number.Decimal("5"),
		})
		require.NoError(t, err)
		assert.Equal(t, "5", f.collateral(t, "carol", "uosmo").Amount.String())
	})

	t.Run("invalid amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "-1", "1.5"} {
			_, err := f.ledger.Deposit(f.ctx, &core.DepositRequest{Sender: "alice", Denom: "uosmo", Amount: number.Decimal(amount)})
			assert.ErrorIs(t, err, core.ErrInvalidAmount, amount)
		}

		huge := number.MaxUint128.Add(decimal.New(1, 0))
		_, err := f.ledger.Deposit(f.ctx, &core.DepositRequest{Sender: "alice", Denom: "uosmo", Amount: huge})
		assert.ErrorIs(t, err, core.ErrOverflow)
	})

	t.Run("unknown market", func(t *testing.T) {
		_, err := f.ledger.Deposit(f.ctx, &core.DepositRequest{Sender: "alice", Denom: "ujuno", Amount: number.Decimal("1")})
		assert.ErrorIs(t, err, core.ErrAssetNotEnabled)
	})
}

func TestDepositDisabledAndCapped(t *testing.T) {
	f := newFixture(t)

	params := defaultParams()
	params.DepositEnabled = false
	_, err := f.ledger.InitAsset(f.ctx, owner, "ujuno", params)
	require.NoError(t, err)

	_, err = f.ledger.Deposit(f.ctx, &core.DepositRequest{Sender: "alice", Denom: "ujuno", Amount: number.Decimal("1")})
	assert.ErrorIs(t, err, core.ErrAssetNotEnabled)

	params = defaultParams()
	params.DepositCap = decimal.NewNullDecimal(number.Decimal("1500"))
	_, err = f.ledger.InitAsset(f.ctx, owner, "uusdc", params)
	require.NoError(t, err)

	f.deposit(t, "alice", "uusdc", "1000")
	_, err = f.ledger.Deposit(f.ctx, &core.DepositRequest{Sender: "alice", Denom: "uusdc", Amount: number.Decimal("501")})
	assert.ErrorIs(t, err, core.ErrDepositCapExceeded)
	assert.Equal(t, "1000", f.collateral(t, "alice", "uusdc").Amount.String())

	f.deposit(t, "alice", "uusdc", "500")
	assert.Equal(t, "1500", f.market(t, "uusdc").TotalLiquidity.String())
}

func TestConcurrentDeposits(t *testing.T) {
	f := newFixture(t)

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			_, err := f.ledger.Deposit(f.ctx, &core.DepositRequest{Sender: "alice", Denom: "uosmo", Amount: number.Decimal("10")})
			return err
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, "200", f.collateral(t, "alice", "uosmo").Amount.String())
	assert.Equal(t, "200", f.market(t, "uosmo").TotalLiquidity.String())
}
