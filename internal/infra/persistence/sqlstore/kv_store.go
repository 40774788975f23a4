package sqlstore

import (
	"context"
	"time"

	"pos/internal/domain/repository"
	"pos/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvStore struct {
	db *gorm.DB
}

// NewKVStore stores values as rows of the kv_entries table.
func NewKVStore(db *gorm.DB) repository.KVStore {
	return &kvStore{db: db}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntryModel
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "get %s", key)
	}

	return entry.Value, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	return upsert(s.db.WithContext(ctx), key, value)
}

func (s *kvStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			if err := upsert(tx, key, value); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&KVEntryModel{}).Error; err != nil {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func upsert(db *gorm.DB, key string, value []byte) error {
	entry := KVEntryModel{Key: key, Value: value, UpdatedAt: time.Now().UTC()}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "upsert %s", key)
	}

	return nil
}
