package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories apply every spec they are
// handed before executing, so call sites compose filters declaratively.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
