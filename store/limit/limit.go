package limit

import (
	"context"
	"redbank/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

// Store loan limit store with transactional writes
type Store interface {
	core.ILoanLimitStore
	Save(ctx context.Context, tx *db.DB, limit *core.LoanLimit) error
}

type limitStore struct {
	db *db.DB
}

// New new loan limit store
func New(db *db.DB) Store {
	return &limitStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.LoanLimit{})
		if err := tx.AutoMigrate(core.LoanLimit{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *limitStore) FindLoanLimit(ctx context.Context, userID, denom string) (*core.LoanLimit, error) {
	var limit core.LoanLimit
	if err := s.db.View().Where("user_id=? AND denom=?", userID, denom).First(&limit).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.LoanLimit{UserID: userID, Denom: denom}, nil
		}

		return nil, err
	}

	return &limit, nil
}

func (s *limitStore) Save(ctx context.Context, tx *db.DB, limit *core.LoanLimit) error {
	if limit.ID == 0 {
		return tx.Update().Create(limit).Error
	}

	version := limit.Version
	limit.Version++
	update := tx.Update().Model(core.LoanLimit{}).Where("id=? AND version=?", limit.ID, version).Updates(map[string]interface{}{
		"loan_limit": limit.Limit,
		"version":    limit.Version,
	})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
