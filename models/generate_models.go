package models

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Model generation and column report

GENERATE_MODELS=true migrates the three tables and writes gorm/gen query helpers to ./generated.
GENERATE_COLUMN_REPORT=true lists database columns that no Go model field maps to, e.g.

	projects: all columns accounted for
	technologies: 1 unmapped column(s): created_at

The production schema is owned outside this service.
*/

// All returns one zero value of every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Project{},
		&Technology{},
		&ProjectTechnology{},
	}
}

// GenerateModels migrates the schema and emits typed query helpers.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	log.Info().Msg("Migrating models...")
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)
	g.Execute()

	log.Info().Str("outPath", outPath).Msg("Model generation complete")
	return nil
}

// ColumnMismatchReport returns, per table, the database columns not mapped by the matching model.
// Tables that do not exist yet are skipped.
func ColumnMismatchReport(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	cache := &sync.Map{}

	for _, model := range All() {
		s, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}

		if !db.Migrator().HasTable(s.Table) {
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(s.Table)
		if err != nil {
			return nil, fmt.Errorf("read columns of %s: %w", s.Table, err)
		}

		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		report[s.Table] = findColumnMismatches(dbColumns, s.DBNames)
	}

	return report, nil
}

// LogColumnMismatchReport logs the report table by table.
func LogColumnMismatchReport(db *gorm.DB) error {
	report, err := ColumnMismatchReport(db)
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(report))
	for table := range report {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	total := 0
	for _, table := range tables {
		missing := report[table]
		total += len(missing)
		if len(missing) == 0 {
			log.Info().Str("table", table).Msg("All columns are accounted for in the model")
			continue
		}
		log.Warn().Str("table", table).Strs("columns", missing).Msg("Columns not accounted for in model")
	}

	log.Info().Int("total", total).Msg("Column mismatch report complete")
	return nil
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	mismatches := []string{}
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}

	return mismatches
}
