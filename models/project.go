package models

// Project represents a portfolio entry with its external links
type Project struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" db:"title" gorm:"type:varchar(255)"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	Image       string `json:"image" db:"image" gorm:"type:varchar(512)"`
	Github      string `json:"github" db:"github" gorm:"type:varchar(512)"`
	Demo        string `json:"demo" db:"demo" gorm:"type:varchar(512)"`

	// Technologies is the comma-joined, name-sorted list of linked technologies; nil when none are linked.
	Technologies *string `json:"technologies" gorm:"-"`
}
