package repository

import (
	"errors"
	"strconv"

	"obrasgov/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultInstituicaoRepository struct {
	db *gorm.DB
}

func NewInstituicaoRepository(db *gorm.DB) *DefaultInstituicaoRepository {
	return &DefaultInstituicaoRepository{db: db}
}

// UpsertAll inserts institutions, skipping codes that already exist.
func (r *DefaultInstituicaoRepository) UpsertAll(list []entity.Instituicao) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(i *entity.Instituicao) string { return i.Codigo }, true)
}

func (r *DefaultInstituicaoRepository) FindByCodigo(codigo string) (*entity.Instituicao, error) {
	var inst entity.Instituicao
	err := r.db.First(&inst, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *DefaultInstituicaoRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Instituicao{}).Count(&n).Error
	return n, err
}

func intKey(id int) string {
	return strconv.Itoa(id)
}
