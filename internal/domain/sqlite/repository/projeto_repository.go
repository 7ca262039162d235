package repository

import (
	"errors"

	"obrasgov/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultProjetoRepository struct {
	db *gorm.DB
}

func NewProjetoRepository(db *gorm.DB) *DefaultProjetoRepository {
	return &DefaultProjetoRepository{db: db}
}

// InsertAll is strict: a duplicate id_unico fails the whole batch. Projects
// are not reference data; a repeated key means the caller prepared the
// dataset wrong.
func (r *DefaultProjetoRepository) InsertAll(list []entity.ProjetoInvestimento) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(p *entity.ProjetoInvestimento) string { return p.IDUnico }, false)
}

func (r *DefaultProjetoRepository) FindByID(idUnico string) (*entity.ProjetoInvestimento, error) {
	var projeto entity.ProjetoInvestimento
	err := r.db.First(&projeto, "id_unico = ?", idUnico).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &projeto, nil
}

func (r *DefaultProjetoRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entity.ProjetoInvestimento{}).Count(&n).Error
	return n, err
}

// Delete cascades to junction and funding rows via the schema.
func (r *DefaultProjetoRepository) Delete(idUnico string) error {
	return r.db.Delete(&entity.ProjetoInvestimento{}, "id_unico = ?", idUnico).Error
}
