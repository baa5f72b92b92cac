package database

import (
	"context"
	"sort"
	"strings"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectTechnologyRepo struct {
	db *gorm.DB
}

func NewProjectTechnologyRepo(db *gorm.DB) *ProjectTechnologyRepo {
	return &ProjectTechnologyRepo{db}
}

// linkRow is one (project, technology name) pair of the three-table join
type linkRow struct {
	ProjectID    uint
	ProjectTitle string
	Name         string
}

// Summaries lists every project that has at least one link, with its technology names joined by ", "
func (r *ProjectTechnologyRepo) Summaries(ctx context.Context) ([]models.ProjectTechnologySummary, error) {
	var rows []linkRow
	err := r.db.WithContext(ctx).
		Table("project_technologies").
		Select("projects.id AS project_id, projects.title AS project_title, technologies.name AS name").
		Joins("JOIN projects ON projects.id = project_technologies.project_id").
		Joins("JOIN technologies ON technologies.id = project_technologies.technology_id").
		Order("projects.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := []models.ProjectTechnologySummary{}
	var names []string
	flush := func() {
		if len(summaries) == 0 {
			return
		}
		sortNames(names)
		summaries[len(summaries)-1].Technologies = strings.Join(names, ", ")
	}
	for _, row := range rows {
		if len(summaries) == 0 || summaries[len(summaries)-1].ProjectID != row.ProjectID {
			flush()
			summaries = append(summaries, models.ProjectTechnologySummary{
				ProjectID:    row.ProjectID,
				ProjectTitle: row.ProjectTitle,
			})
			names = names[:0]
		}
		names = append(names, row.Name)
	}
	flush()

	return summaries, nil
}

// AddLinks bulk-inserts (projectID, technologyID) pairs; pairs that already exist are skipped
func (r *ProjectTechnologyRepo) AddLinks(ctx context.Context, projectID uint, technologyIDs []uint) error {
	if len(technologyIDs) == 0 {
		return nil
	}

	links := make([]models.ProjectTechnology, 0, len(technologyIDs))
	for _, technologyID := range technologyIDs {
		links = append(links, models.ProjectTechnology{ProjectID: projectID, TechnologyID: technologyID})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

// Delete removes the single link between a project and a technology
func (r *ProjectTechnologyRepo) Delete(ctx context.Context, projectID, technologyID uint) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND technology_id = ?", projectID, technologyID).
		Delete(&models.ProjectTechnology{}).Error
}

// DeleteByProject removes every link of a project
func (r *ProjectTechnologyRepo) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&models.ProjectTechnology{}).Error
}

// DeleteByTechnology removes every link to a technology
func (r *ProjectTechnologyRepo) DeleteByTechnology(ctx context.Context, technologyID uint) error {
	return r.db.WithContext(ctx).Where("technology_id = ?", technologyID).Delete(&models.ProjectTechnology{}).Error
}

// technologyNamesByProject maps each project id to its linked technology names, sorted case-insensitively
func technologyNamesByProject(ctx context.Context, db *gorm.DB, projectIDs []uint) (map[uint][]string, error) {
	var rows []linkRow
	err := db.WithContext(ctx).
		Table("project_technologies").
		Select("project_technologies.project_id AS project_id, technologies.name AS name").
		Joins("JOIN technologies ON technologies.id = project_technologies.technology_id").
		Where("project_technologies.project_id IN ?", projectIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uint][]string, len(projectIDs))
	for _, row := range rows {
		names[row.ProjectID] = append(names[row.ProjectID], row.Name)
	}
	for _, projectNames := range names {
		sortNames(projectNames)
	}
	return names, nil
}

// sortNames orders names case-insensitively, whatever the database collation is.
// Names equal under case folding keep a byte-wise order.
func sortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
}

// joinNames joins names with sep; ok is false when there is nothing to join
func joinNames(names []string, sep string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}
	return strings.Join(names, sep), true
}
