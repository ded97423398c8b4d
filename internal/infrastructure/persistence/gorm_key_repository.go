package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/keyops/crypto-keyops/internal/domain/keys"
	"github.com/keyops/crypto-keyops/internal/infrastructure/persistence/models"
	"github.com/keyops/crypto-keyops/internal/pkg/logger"
)

// ErrKeyNotFound is returned when no stored key matches the lookup.
var ErrKeyNotFound = errors.New("key not found")

type gormKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyRepository creates a GORM-based KeyRepository implementation.
func NewGormKeyRepository(db *gorm.DB, logger logger.Logger) (keys.KeyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &gormKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyRepository) Create(ctx context.Context, key *keys.Key) error {
	if err := key.Meta.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyModel{}
	model.FromDomain(key)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}

	r.logger.Info("Stored ", key.Meta.Type, " key with id ", key.Meta.ID)
	return nil
}

func (r *gormKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	if query == nil {
		query = &keys.KeyQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	tx := r.db.WithContext(ctx).Model(&models.KeyModel{})
	if query.Algorithm != "" {
		tx = tx.Where("algorithm = ?", query.Algorithm)
	}
	if query.Type != "" {
		tx = tx.Where("type = ?", query.Type)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var modelList []*models.KeyModel
	if err := tx.Order("date_time_created DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	metas := make([]*keys.KeyMeta, 0, len(modelList))
	for _, model := range modelList {
		key := model.ToDomain()
		meta := key.Meta
		metas = append(metas, &meta)
	}
	return metas, nil
}

func (r *gormKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.Key, error) {
	var model models.KeyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", keyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrKeyNotFound, keyID)
		}
		return nil, fmt.Errorf("failed to get key: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyRepository) GetByPair(ctx context.Context, keyPairID, keyType string) (*keys.Key, error) {
	var model models.KeyModel
	err := r.db.WithContext(ctx).
		First(&model, "key_pair_id = ? AND type = ?", keyPairID, keyType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pair %s type %s", ErrKeyNotFound, keyPairID, keyType)
		}
		return nil, fmt.Errorf("failed to get key: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	result := r.db.WithContext(ctx).Delete(&models.KeyModel{}, "id = ?", keyID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %s", ErrKeyNotFound, keyID)
	}

	r.logger.Info("Deleted key with id ", keyID)
	return nil
}
