package specification

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ByAnyTagOrSkill matches courses whose tags OR skills arrays contain at
// least one of the given tags. An empty tag set matches nothing.
type ByAnyTagOrSkill struct {
	Tags []string
}

func (s ByAnyTagOrSkill) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Tags) == 0 {
		return db.Where("1 = 0")
	}

	cond := db.Session(&gorm.Session{NewDB: true}).
		Where(datatypes.JSONArrayQuery("tags").Contains(s.Tags[0])).
		Or(datatypes.JSONArrayQuery("skills").Contains(s.Tags[0]))
	for _, tag := range s.Tags[1:] {
		cond = cond.
			Or(datatypes.JSONArrayQuery("tags").Contains(tag)).
			Or(datatypes.JSONArrayQuery("skills").Contains(tag))
	}
	return db.Where(cond)
}

// ByCategory filters by the catalog category column.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}
