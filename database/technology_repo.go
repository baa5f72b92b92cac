package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns all technologies ordered by id
func (r *TechnologyRepo) FindAll(ctx context.Context) ([]models.Technology, error) {
	technologies := []models.Technology{}
	err := r.db.WithContext(ctx).Order("id").Find(&technologies).Error
	return technologies, err
}

// FindByNames returns the technologies whose name is in names
func (r *TechnologyRepo) FindByNames(ctx context.Context, names []string) ([]models.Technology, error) {
	technologies := []models.Technology{}
	if len(names) == 0 {
		return technologies, nil
	}
	err := r.db.WithContext(ctx).Where("name IN ?", names).Order("id").Find(&technologies).Error
	return technologies, err
}

// Add inserts a new technology and sets its generated id
func (r *TechnologyRepo) Add(ctx context.Context, technology *models.Technology) error {
	return r.db.WithContext(ctx).Create(technology).Error
}

// EnsureNames bulk-inserts one technology per name, skipping names that already exist
func (r *TechnologyRepo) EnsureNames(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	technologies := make([]models.Technology, 0, len(names))
	for _, name := range names {
		technologies = append(technologies, models.Technology{Name: name})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&technologies).Error
}

// Rename sets the name of the technology with the given id
func (r *TechnologyRepo) Rename(ctx context.Context, id uint, name string) error {
	return r.db.WithContext(ctx).
		Model(&models.Technology{}).
		Where("id = ?", id).
		Update("name", name).Error
}

// Delete removes a technology by id. Link rows are left untouched.
func (r *TechnologyRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Technology{}).Error
}
