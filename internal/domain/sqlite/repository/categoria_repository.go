package repository

import (
	"errors"

	"obrasgov/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultCategoriaRepository handles the three levels of the category
// hierarchy together; they always load as a unit, parents first.
type DefaultCategoriaRepository struct {
	db *gorm.DB
}

func NewCategoriaRepository(db *gorm.DB) *DefaultCategoriaRepository {
	return &DefaultCategoriaRepository{db: db}
}

func (r *DefaultCategoriaRepository) UpsertEixos(list []entity.Eixo) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(e *entity.Eixo) string { return intKey(e.ID) }, true)
}

func (r *DefaultCategoriaRepository) UpsertTipos(list []entity.Tipo) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(t *entity.Tipo) string { return intKey(t.ID) }, true)
}

func (r *DefaultCategoriaRepository) UpsertSubtipos(list []entity.Subtipo) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(s *entity.Subtipo) string { return intKey(s.ID) }, true)
}

func (r *DefaultCategoriaRepository) FindTipoByID(id int) (*entity.Tipo, error) {
	var tipo entity.Tipo
	err := r.db.First(&tipo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (r *DefaultCategoriaRepository) FindSubtipoByID(id int) (*entity.Subtipo, error) {
	var sub entity.Subtipo
	err := r.db.First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteEixo removes an axis; dependent tipos survive with id_eixo nulled
// by the schema's ON DELETE SET NULL.
func (r *DefaultCategoriaRepository) DeleteEixo(id int) error {
	return r.db.Delete(&entity.Eixo{}, "id = ?", id).Error
}

func (r *DefaultCategoriaRepository) DeleteTipo(id int) error {
	return r.db.Delete(&entity.Tipo{}, "id = ?", id).Error
}
