package specification

import "gorm.io/gorm"

type ByPolicyType struct {
	PolicyType string
}

func (s ByPolicyType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("policy_type = ?", s.PolicyType)
}

type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}

type TitleOrContentLike struct {
	Term string
}

func (s TitleOrContentLike) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + s.Term + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", like, like)
}
