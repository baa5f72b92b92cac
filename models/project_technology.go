package models

// ProjectTechnology links one project to one technology
type ProjectTechnology struct {
	ProjectID    uint `json:"projectId" db:"project_id" gorm:"primaryKey;autoIncrement:false;index:idx_project_technology_project_id"`
	TechnologyID uint `json:"technologyId" db:"technology_id" gorm:"primaryKey;autoIncrement:false;index:idx_project_technology_technology_id"`
}

func (ProjectTechnology) TableName() string {
	return "project_technologies"
}

// ProjectTechnologySummary is one row of the link listing: a project and the names linked to it
type ProjectTechnologySummary struct {
	ProjectID    uint   `json:"projectId"`
	ProjectTitle string `json:"projectTitle"`
	Technologies string `json:"technologies"`
}
