package specification

import "gorm.io/gorm"

// Specification narrows a query. Implementations append clauses to the
// passed-in builder and return it.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
