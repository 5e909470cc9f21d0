package directoryrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/stage"

	"gorm.io/gorm"
)

// GormDirectory implements ports.DriverDirectory and
// ports.EntityDirectory using GORM.
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory creates a new GORM directory repository.
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// ListDrivers retrieves the full driver directory.
func (r *GormDirectory) ListDrivers(ctx context.Context) ([]directory.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]directory.Driver, 0, len(dtos))
	for _, dto := range dtos {
		drivers = append(drivers, directory.Driver{
			ID:          dto.ID,
			DisplayName: dto.DisplayName,
		})
	}

	return drivers, nil
}

// ListEntities retrieves all supplying entities of one type.
func (r *GormDirectory) ListEntities(
	ctx context.Context,
	entityType stage.EntityType,
) ([]directory.Entity, error) {
	if err := entityType.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntityDTO
	err := r.db.WithContext(ctx).
		Where("entity_type = ?", entityType.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entities := make([]directory.Entity, 0, len(dtos))
	for _, dto := range dtos {
		entities = append(entities, directory.Entity{
			ID:          dto.ID,
			Type:        entityType,
			DisplayName: dto.DisplayName,
		})
	}

	return entities, nil
}
