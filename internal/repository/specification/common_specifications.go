package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// LimitTo caps the number of returned rows.
type LimitTo struct {
	Limit int
}

func (s LimitTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit)
}
