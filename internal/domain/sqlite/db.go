package sqlite

import (
	"time"

	"obrasgov/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Init opens (or creates) the database file and migrates the full schema.
// Foreign keys are off by default in SQLite and must be enabled per
// connection; the loader depends on them.
func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Parents before children, same order the loader writes in.
	err = db.AutoMigrate(
		&entity.Instituicao{},
		&entity.Eixo{},
		&entity.Tipo{},
		&entity.Subtipo{},
		&entity.ProjetoInvestimento{},
		&entity.ProjetoTomador{},
		&entity.ProjetoExecutor{},
		&entity.ProjetoRepassador{},
		&entity.ProjetoEixo{},
		&entity.ProjetoTipo{},
		&entity.ProjetoSubtipo{},
		&entity.FonteDeRecurso{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
