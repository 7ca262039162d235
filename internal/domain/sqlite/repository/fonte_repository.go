package repository

import (
	"fmt"

	"obrasgov/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultFonteRepository struct {
	db *gorm.DB
}

func NewFonteRepository(db *gorm.DB) *DefaultFonteRepository {
	return &DefaultFonteRepository{db: db}
}

func (r *DefaultFonteRepository) InsertAll(list []entity.FonteDeRecurso) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(f *entity.FonteDeRecurso) string {
		return fmt.Sprintf("%s/%s", f.IDProjeto, f.Origem)
	}, false)
}

func (r *DefaultFonteRepository) FindByProjeto(idProjeto string) ([]entity.FonteDeRecurso, error) {
	var fontes []entity.FonteDeRecurso
	err := r.db.Where("id_projeto = ?", idProjeto).Find(&fontes).Error
	if err != nil {
		return nil, err
	}
	return fontes, nil
}
