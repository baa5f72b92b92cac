package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project with its technologies, ordered by id
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	projects := []*models.Project{}
	if err := r.db.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, r.attachTechnologies(ctx, projects)
}

// FindByID returns the project with the given id as a slice holding zero or one element
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) ([]*models.Project, error) {
	projects := []*models.Project{}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, r.attachTechnologies(ctx, projects)
}

// FindByTechnologyName returns the projects linked to a technology with the given name
func (r *ProjectRepo) FindByTechnologyName(ctx context.Context, name string) ([]*models.Project, error) {
	linked := r.db.Table("project_technologies").
		Select("project_technologies.project_id").
		Joins("JOIN technologies ON technologies.id = project_technologies.technology_id").
		Where("technologies.name = ?", name)

	projects := []*models.Project{}
	if err := r.db.WithContext(ctx).Where("id IN (?)", linked).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, r.attachTechnologies(ctx, projects)
}

// Add inserts a new project and sets its generated id
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update overwrites all mutable fields of the project with the given id, empty values included
func (r *ProjectRepo) Update(ctx context.Context, id uint, project *models.Project) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       project.Title,
			"description": project.Description,
			"image":       project.Image,
			"github":      project.Github,
			"demo":        project.Demo,
		}).Error
}

// Delete removes a project by id. Link rows are left untouched.
func (r *ProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{}).Error
}

func (r *ProjectRepo) attachTechnologies(ctx context.Context, projects []*models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	names, err := technologyNamesByProject(ctx, r.db, ids)
	if err != nil {
		return err
	}

	for _, p := range projects {
		if joined, ok := joinNames(names[p.ID], ","); ok {
			p.Technologies = &joined
		}
	}
	return nil
}
