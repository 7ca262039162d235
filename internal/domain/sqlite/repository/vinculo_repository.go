package repository

import (
	"obrasgov/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultVinculoRepository writes the six junction tables. All inserts are
// strict; a duplicate (project, target) pair or a missing parent is a data
// error the loader must surface, not paper over.
type DefaultVinculoRepository struct {
	db *gorm.DB
}

func NewVinculoRepository(db *gorm.DB) *DefaultVinculoRepository {
	return &DefaultVinculoRepository{db: db}
}

func (r *DefaultVinculoRepository) InsertTomadores(list []entity.ProjetoTomador) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(v *entity.ProjetoTomador) string {
		return v.IDProjeto + "/" + v.CodigoInstituicao
	}, false)
}

func (r *DefaultVinculoRepository) InsertExecutores(list []entity.ProjetoExecutor) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(v *entity.ProjetoExecutor) string {
		return v.IDProjeto + "/" + v.CodigoInstituicao
	}, false)
}

func (r *DefaultVinculoRepository) InsertRepassadores(list []entity.ProjetoRepassador) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(v *entity.ProjetoRepassador) string {
		return v.IDProjeto + "/" + v.CodigoInstituicao
	}, false)
}

func (r *DefaultVinculoRepository) InsertEixos(list []entity.ProjetoEixo) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(v *entity.ProjetoEixo) string {
		return v.IDProjeto + "/" + intKey(v.IDEixo)
	}, false)
}

func (r *DefaultVinculoRepository) InsertTipos(list []entity.ProjetoTipo) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(v *entity.ProjetoTipo) string {
		return v.IDProjeto + "/" + intKey(v.IDTipo)
	}, false)
}

func (r *DefaultVinculoRepository) InsertSubtipos(list []entity.ProjetoSubtipo) (int, int, *FailedRow) {
	return insertBatch(r.db, list, func(v *entity.ProjetoSubtipo) string {
		return v.IDProjeto + "/" + intKey(v.IDSubtipo)
	}, false)
}

func (r *DefaultVinculoRepository) CountTomadores(idProjeto string) (int64, error) {
	var n int64
	err := r.db.Model(&entity.ProjetoTomador{}).Where("id_projeto = ?", idProjeto).Count(&n).Error
	return n, err
}
