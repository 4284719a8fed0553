// Package models defines the registry metadata entities and their domain
// errors. The relational store owns these row lifecycles exclusively.
package models

// AllModels returns all GORM models for auto-migration.
func AllModels() []any {
	return []any{
		&Organization{},
		&RegistryEntry{},
		&Version{},
	}
}
