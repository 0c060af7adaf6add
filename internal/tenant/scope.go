package tenant

import "gorm.io/gorm"

// Scope restricts a query to one university.
func Scope(universityID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("university_id = ?", universityID)
	}
}

// ScopeTable is Scope for queries that join several university-owned tables.
func ScopeTable(table, universityID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".university_id = ?", universityID)
	}
}
