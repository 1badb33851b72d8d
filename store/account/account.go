package account

import (
	"context"
	"redbank/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

// Store collateral & debt store with transactional writes.
// A zero scaled amount removes the entry.
type Store interface {
	core.IAccountStore
	SaveCollateral(ctx context.Context, tx *db.DB, collateral *core.Collateral) error
	SaveDebt(ctx context.Context, tx *db.DB, debt *core.Debt) error
}

type accountStore struct {
	db *db.DB
}

// New new account store
func New(db *db.DB) Store {
	return &accountStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		if err := db.Update().Model(core.Collateral{}).AutoMigrate(core.Collateral{}).Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.Debt{}).AutoMigrate(core.Debt{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *accountStore) FindCollateral(ctx context.Context, userID, denom string) (*core.Collateral, error) {
	var collateral core.Collateral
	if err := s.db.View().Where("user_id=? AND denom=?", userID, denom).First(&collateral).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Collateral{UserID: userID, Denom: denom}, nil
		}

		return nil, err
	}

	return &collateral, nil
}

func (s *accountStore) ListCollaterals(ctx context.Context, userID string) ([]*core.Collateral, error) {
	var collaterals []*core.Collateral
	if err := s.db.View().Where("user_id=?", userID).Order("denom").Find(&collaterals).Error; err != nil {
		return nil, err
	}

	return collaterals, nil
}

func (s *accountStore) FindDebt(ctx context.Context, userID, denom string) (*core.Debt, error) {
	var debt core.Debt
	if err := s.db.View().Where("user_id=? AND denom=?", userID, denom).First(&debt).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Debt{UserID: userID, Denom: denom}, nil
		}

		return nil, err
	}

	return &debt, nil
}

func (s *accountStore) ListDebts(ctx context.Context, userID string) ([]*core.Debt, error) {
	var debts []*core.Debt
	if err := s.db.View().Where("user_id=?", userID).Order("denom").Find(&debts).Error; err != nil {
		return nil, err
	}

	return debts, nil
}

func (s *accountStore) SaveCollateral(ctx context.Context, tx *db.DB, collateral *core.Collateral) error {
	empty := !collateral.AmountScaled.IsPositive()
	if collateral.ID == 0 {
		if empty {
			return nil
		}

		return tx.Update().Create(collateral).Error
	}

	version := collateral.Version
	query := tx.Update().Where("id=? AND version=?", collateral.ID, version)
	if empty {
		return checkAffected(query.Delete(core.Collateral{}))
	}

	collateral.Version++
	return checkAffected(query.Model(core.Collateral{}).Updates(map[string]interface{}{
		"amount_scaled": collateral.AmountScaled,
		"enabled":       collateral.Enabled,
		"version":       collateral.Version,
	}))
}

func (s *accountStore) SaveDebt(ctx context.Context, tx *db.DB, debt *core.Debt) error {
	empty := !debt.AmountScaled.IsPositive()
	if debt.ID == 0 {
		if empty {
			return nil
		}

		return tx.Update().Create(debt).Error
	}

	version := debt.Version
	query := tx.Update().Where("id=? AND version=?", debt.ID, version)
	if empty {
		return checkAffected(query.Delete(core.Debt{}))
	}

	debt.Version++
	return checkAffected(query.Model(core.Debt{}).Updates(map[string]interface{}{
		"amount_scaled":    debt.AmountScaled,
		"uncollateralized": debt.Uncollateralized,
		"version":          debt.Version,
	}))
}

func checkAffected(tx *gorm.DB) error {
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
