package catalogrepo

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogReader implements ProductCatalogReader using GORM.
// Soft-deleted products are filtered out by GORM's DeletedAt handling, so a
// removed product is indistinguishable from one that never existed.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// Resolve returns a snapshot for every requested id that exists, keyed by id.
// Ids without a live catalog row are absent from the result.
func (r *GormCatalogReader) Resolve(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]product.Product, error) {
	resolved := make(map[kernel.UUID]product.Product, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		snapshot, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		resolved[snapshot.ID()] = snapshot
	}

	return resolved, nil
}
