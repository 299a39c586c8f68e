package specification

import "gorm.io/gorm"

type ByID struct {
	ID uint
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return db.Order(s.Field + " " + dir)
}

type Limit struct {
	Count int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Count)
}
