package infra

import (
	"errors"
	"fmt"

	"finca/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// driver for migrate
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// source for migrate
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the PostgreSQL store. With a migrationsPath
// (file://migrations) the versioned SQL migrations are applied first; without
// one the schema comes from GORM AutoMigrate, which is only meant for local
// development.
func NewDatabase(dsn, migrationsPath string) (*gorm.DB, error) {
	if migrationsPath != "" {
		if err := runSQLMigrations(dsn, migrationsPath); err != nil {
			return nil, fmt.Errorf("sql migrations: %w", err)
		}
	}

	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if migrationsPath == "" {
		if err := RunMigrations(db); err != nil {
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}
	return db, nil
}

// GormConfig is shared by the postgres store and the sqlite test store.
// TranslateError maps unique violations to gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
}

func runSQLMigrations(dsn, source string) error {
	m, err := migrate.New(source, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	version, dirty, _ := m.Version()
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("database migrations applied")
	return nil
}

// RunMigrations creates or updates every table from the GORM models.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Trabajador{},
		&model.Lote{},
		&model.AnalisisSuelo{},
		&model.CatalogoProducto{},
		&model.CatalogoLabor{},
		&model.Tarifa{},
		&model.Jornada{},
		&model.Recoleccion{},
		&model.Insumo{},
		&model.Vale{},
		&model.Plan{},
		&model.Cierre{},
	)
}
