package database

import (
	"context"
	"fmt"
)

// LinkTechnologies makes sure every name exists as a technology, then links them all to the project.
// The three steps share one transaction.
func (d Database) LinkTechnologies(ctx context.Context, projectID uint, names []string) error {
	return d.Transaction(ctx, func(tx Database) error {
		return tx.linkNames(ctx, projectID, uniqueNames(names))
	})
}

// ReplaceTechnologies swaps the project's whole technology set for names in one transaction.
func (d Database) ReplaceTechnologies(ctx context.Context, projectID uint, names []string) error {
	return d.Transaction(ctx, func(tx Database) error {
		if err := tx.projectTechnologyRepo.DeleteByProject(ctx, projectID); err != nil {
			return fmt.Errorf("delete existing links: %w", err)
		}
		return tx.linkNames(ctx, projectID, uniqueNames(names))
	})
}

// DeleteProject removes a project, and its link rows too when cascading is enabled.
func (d Database) DeleteProject(ctx context.Context, id uint) error {
	if !d.deleteCascade {
		return d.projectRepo.Delete(ctx, id)
	}
	return d.Transaction(ctx, func(tx Database) error {
		if err := tx.projectTechnologyRepo.DeleteByProject(ctx, id); err != nil {
			return fmt.Errorf("delete project links: %w", err)
		}
		return tx.projectRepo.Delete(ctx, id)
	})
}

// DeleteTechnology removes a technology, and its link rows too when cascading is enabled.
func (d Database) DeleteTechnology(ctx context.Context, id uint) error {
	if !d.deleteCascade {
		return d.technologyRepo.Delete(ctx, id)
	}
	return d.Transaction(ctx, func(tx Database) error {
		if err := tx.projectTechnologyRepo.DeleteByTechnology(ctx, id); err != nil {
			return fmt.Errorf("delete technology links: %w", err)
		}
		return tx.technologyRepo.Delete(ctx, id)
	})
}

func (d Database) linkNames(ctx context.Context, projectID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}

	if err := d.technologyRepo.EnsureNames(ctx, names); err != nil {
		return fmt.Errorf("insert technologies: %w", err)
	}

	technologies, err := d.technologyRepo.FindByNames(ctx, names)
	if err != nil {
		return fmt.Errorf("resolve technology ids: %w", err)
	}

	ids := make([]uint, 0, len(technologies))
	for _, t := range technologies {
		ids = append(ids, t.ID)
	}

	if err := d.projectTechnologyRepo.AddLinks(ctx, projectID, ids); err != nil {
		return fmt.Errorf("insert project links: %w", err)
	}
	return nil
}

// uniqueNames drops repeated names, keeping first-seen order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
