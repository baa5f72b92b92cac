package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	db                    *gorm.DB
	deleteCascade         bool
	projectRepo           *ProjectRepo
	technologyRepo        *TechnologyRepo
	projectTechnologyRepo *ProjectTechnologyRepo
}

// Option customizes a Database at construction time.
type Option func(*Database)

// WithDeleteCascade makes project and technology deletes also remove their link rows.
func WithDeleteCascade(enabled bool) Option {
	return func(d *Database) {
		d.deleteCascade = enabled
	}
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB, opts ...Option) Database {
	d := Database{db: db}
	for _, opt := range opts {
		opt(&d)
	}
	return d.withDB(db)
}

func (d Database) withDB(db *gorm.DB) Database {
	d.db = db
	d.projectRepo = NewProjectRepo(db)
	d.technologyRepo = NewTechnologyRepo(db)
	d.projectTechnologyRepo = NewProjectTechnologyRepo(db)
	return d
}

// Open connects to the configured driver and applies the pool settings.
func Open(cfg config.DatabaseConfig, gormLogger logger.Interface) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	case config.DriverPostgres, config.DriverSupabase:
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// gormWriter adapts zerolog to gorm's Printf-style logger.
type gormWriter struct {
	logger zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn().Msgf(format, args...)
}

// NewGormLogger routes SQL errors and slow queries through zerolog.
func NewGormLogger(l zerolog.Logger) logger.Interface {
	return logger.New(
		gormWriter{logger: l.With().Str("component", "gorm").Logger()},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) ProjectTechnologyRepo() *ProjectTechnologyRepo {
	return d.projectTechnologyRepo
}

func (d Database) DeleteCascade() bool {
	return d.deleteCascade
}

// Transaction runs fn against repositories bound to a single transaction.
// Any error returned by fn rolls every statement back.
func (d Database) Transaction(ctx context.Context, fn func(tx Database) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(d.withDB(tx))
	})
}

// Migrate creates the projects, technologies and project_technologies tables if they are missing.
func (d Database) Migrate(ctx context.Context) error {
	return d.db.WithContext(ctx).AutoMigrate(models.All()...)
}

// Ping checks that a pooled connection can reach the server.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
