package price

import (
	"context"
	"redbank/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type priceStore struct {
	db *db.DB
}

// New new price store
func New(db *db.DB) core.IPriceStore {
	return &priceStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Price{})

		if err := tx.AutoMigrate(core.Price{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *priceStore) Find(ctx context.Context, denom string) (*core.Price, error) {
	var price core.Price
	if err := s.db.View().Where("denom=?", denom).First(&price).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Price{Denom: denom}, nil
		}

		return nil, err
	}

	return &price, nil
}

func (s *priceStore) Save(ctx context.Context, price *core.Price) error {
	return s.db.Tx(func(tx *db.DB) error {
		var current core.Price
		if err := tx.Update().Where("denom=?", price.Denom).First(&current).Error; err != nil {
			if !gorm.IsRecordNotFoundError(err) {
				return err
			}

			return tx.Update().Create(price).Error
		}

		update := tx.Update().Model(core.Price{}).Where("id=? AND version=?", current.ID, current.Version).Updates(map[string]interface{}{
			"price":   price.Price,
			"version": current.Version + 1,
		})
		if update.Error != nil {
			return update.Error
		}

		if update.RowsAffected == 0 {
			return db.ErrOptimisticLock
		}

		price.ID = current.ID
		price.Version = current.Version + 1
		return nil
	})
}

func (s *priceStore) All(ctx context.Context) ([]*core.Price, error) {
	var prices []*core.Price
	if err := s.db.View().Order("denom").Find(&prices).Error; err != nil {
		return nil, err
	}

	return prices, nil
}
