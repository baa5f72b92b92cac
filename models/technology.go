package models

// Technology is a named tag (language, framework, tool) shared across projects
type Technology struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_technology_name"`
}
