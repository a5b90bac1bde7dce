package postgres

import (
	"context"
	"time"

	"autosphere/internal/domain/repository"
	"autosphere/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore implements repository.KVStore over the kv_entries table.
type kvStore struct {
	db *gorm.DB
}

// NewKVStore is the constructor for kvStore.
func NewKVStore(db *gorm.DB) repository.KVStore {
	return &kvStore{db: db}
}

// Get loads the value of a single key.
func (s *kvStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry model.KVEntryModel
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to get key %q", key)
	}

	return entry.Value, true, nil
}

// Set upserts the value of a single key.
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC()
	entry := &model.KVEntryModel{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error
	if err != nil {
		return errors.Wrapf(err, "failed to set key %q", key)
	}

	return nil
}

// Delete removes a single key.
func (s *kvStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntryModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}

	return nil
}

// Close closes the underlying connection pool.
func (s *kvStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.WithStack(sqlDB.Close())
}
