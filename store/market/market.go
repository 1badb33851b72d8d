package market

import (
	"context"
	"redbank/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

// Store market store with transactional writes
type Store interface {
	core.IMarketStore
	Save(ctx context.Context, tx *db.DB, market *core.Market) error
}

type marketStore struct {
	db *db.DB
}

// New new market store
func New(db *db.DB) Store {
	return &marketStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Market{})
		if err := tx.AutoMigrate(core.Market{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *marketStore) Find(ctx context.Context, denom string) (*core.Market, error) {
	var market core.Market
	if err := s.db.View().Where("denom=?", denom).First(&market).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Market{Denom: denom}, nil
		}

		return nil, err
	}

	return &market, nil
}

func (s *marketStore) All(ctx context.Context) ([]*core.Market, error) {
	var markets []*core.Market
	if err := s.db.View().Order("denom").Find(&markets).Error; err != nil {
		return nil, err
	}

	return markets, nil
}

func (s *marketStore) Save(ctx context.Context, tx *db.DB, market *core.Market) error {
	if market.ID == 0 {
		return tx.Update().Create(market).Error
	}

	version := market.Version
	market.Version++
	update := tx.Update().Model(core.Market{}).Where("id=? AND version=?", market.ID, version).Updates(map[string]interface{}{
		"scaled_liquidity_total":       market.ScaledLiquidityTotal,
		"scaled_debt_total":            market.ScaledDebtTotal,
		"pending_reserve_scaled":       market.PendingReserveScaled,
		"liquidity_index":              market.LiquidityIndex,
		"borrow_index":                 market.BorrowIndex,
		"liquidity_rate":               market.LiquidityRate,
		"borrow_rate":                  market.BorrowRate,
		"indexes_last_updated":         market.IndexesLastUpdated,
		"irm_optimal_utilization_rate": market.InterestRateModel.OptimalUtilizationRate,
		"irm_base":                     market.InterestRateModel.Base,
		"irm_slope1":                   market.InterestRateModel.Slope1,
		"irm_slope2":                   market.InterestRateModel.Slope2,
		"reserve_factor":               market.ReserveFactor,
		"max_loan_to_value":            market.MaxLoanToValue,
		"liquidation_threshold":        market.LiquidationThreshold,
		"liquidation_bonus":            market.LiquidationBonus,
		"deposit_cap":                  market.DepositCap,
		"deposit_enabled":              market.DepositEnabled,
		"borrow_enabled":               market.BorrowEnabled,
		"version":                      market.Version,
	})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
