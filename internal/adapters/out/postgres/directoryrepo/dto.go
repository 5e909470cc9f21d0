// Package directoryrepo provides lookup tables for drivers and supplying
// entities. Directories are reference data: small, read-only from the
// core's point of view, refreshed by an upstream sync.
package directoryrepo

// DriverDTO represents the database structure for the driver directory.
type DriverDTO struct {
	ID          string `gorm:"primaryKey"`
	DisplayName string
}

// TableName specifies the database table name for drivers.
func (DriverDTO) TableName() string {
	return "drivers"
}

// EntityDTO represents the database structure for supplying entities.
// The same numeric id may exist for a farmer and a supplier, so the
// type is part of the key.
type EntityDTO struct {
	EntityType  string `gorm:"primaryKey"`
	ID          string `gorm:"primaryKey"`
	DisplayName string
}

// TableName specifies the database table name for supplying entities.
func (EntityDTO) TableName() string {
	return "entities"
}
