package address

import (
	"context"
	"redbank/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type addressStore struct {
	db *db.DB
}

// New new address store
func New(db *db.DB) core.IAddressStore {
	return &addressStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Address{})

		if err := tx.AutoMigrate(core.Address{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *addressStore) Find(ctx context.Context, addressType core.AddressType) (*core.Address, error) {
	var address core.Address
	if err := s.db.View().Where("type=?", addressType).First(&address).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Address{Type: addressType}, nil
		}

		return nil, err
	}

	return &address, nil
}

func (s *addressStore) Save(ctx context.Context, address *core.Address) error {
	return s.db.Tx(func(tx *db.DB) error {
		var current core.Address
		if err := tx.Update().Where("type=?", address.Type).First(&current).Error; err != nil {
			if !gorm.IsRecordNotFoundError(err) {
				return err
			}

			return tx.Update().Create(address).Error
		}

		update := tx.Update().Model(core.Address{}).Where("id=? AND version=?", current.ID, current.Version).Updates(map[string]interface{}{
			"address": address.Address,
			"version": current.Version + 1,
		})
		if update.Error != nil {
			return update.Error
		}

		if update.RowsAffected == 0 {
			return db.ErrOptimisticLock
		}

		address.ID = current.ID
		address.Version = current.Version + 1
		return nil
	})
}

func (s *addressStore) All(ctx context.Context) ([]*core.Address, error) {
	var addresses []*core.Address
	if err := s.db.View().Order("type").Find(&addresses).Error; err != nil {
		return nil, err
	}

	return addresses, nil
}
