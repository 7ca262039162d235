package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"obrasgov/internal/contract"
	"obrasgov/internal/domain/entity"
	"obrasgov/internal/domain/sqlite/repository"
	"obrasgov/internal/utils"
	"obrasgov/internal/utils/apierror"
)

type InstituicaoRepository interface {
	UpsertAll(list []entity.Instituicao) (int, int, *repository.FailedRow)
}

type CategoriaRepository interface {
	UpsertEixos(list []entity.Eixo) (int, int, *repository.FailedRow)
	UpsertTipos(list []entity.Tipo) (int, int, *repository.FailedRow)
	UpsertSubtipos(list []entity.Subtipo) (int, int, *repository.FailedRow)
}

type ProjetoRepository interface {
	InsertAll(list []entity.ProjetoInvestimento) (int, int, *repository.FailedRow)
	FindByID(idUnico string) (*entity.ProjetoInvestimento, error)
	Count() (int64, error)
}

type VinculoRepository interface {
	InsertTomadores(list []entity.ProjetoTomador) (int, int, *repository.FailedRow)
	InsertExecutores(list []entity.ProjetoExecutor) (int, int, *repository.FailedRow)
	InsertRepassadores(list []entity.ProjetoRepassador) (int, int, *repository.FailedRow)
	InsertEixos(list []entity.ProjetoEixo) (int, int, *repository.FailedRow)
	InsertTipos(list []entity.ProjetoTipo) (int, int, *repository.FailedRow)
	InsertSubtipos(list []entity.ProjetoSubtipo) (int, int, *repository.FailedRow)
}

type FonteRepository interface {
	InsertAll(list []entity.FonteDeRecurso) (int, int, *repository.FailedRow)
}

// DefaultLoaderService performs one full batch load. Tables are written in
// dependency order (reference data, then projects, then everything keyed on
// them); each table commits or rolls back on its own, and a failure stops
// the batch without undoing tables already committed.
type DefaultLoaderService struct {
	Instituicoes InstituicaoRepository
	Categorias   CategoriaRepository
	Projetos     ProjetoRepository
	Vinculos     VinculoRepository
	Fontes       FonteRepository
	Validate     *validator.Validate
}

func NewLoaderService(
	instituicoes InstituicaoRepository,
	categorias CategoriaRepository,
	projetos ProjetoRepository,
	vinculos VinculoRepository,
	fontes FonteRepository,
	validate *validator.Validate,
) *DefaultLoaderService {
	return &DefaultLoaderService{
		Instituicoes: instituicoes,
		Categorias:   categorias,
		Projetos:     projetos,
		Vinculos:     vinculos,
		Fontes:       fontes,
		Validate:     validate,
	}
}

// Load runs the whole batch. On failure the returned error is a
// *contract.LoadError naming the table, row key and violated constraint,
// unless the storage layer failed in a way outside the loader's taxonomy.
func (s *DefaultLoaderService) Load(batch *contract.LoadBatch) (*contract.LoadReport, error) {
	start := time.Now()
	report := &contract.LoadReport{BatchID: uuid.NewString()}

	steps := []func(*contract.LoadBatch, *contract.LoadReport) error{
		s.loadInstituicoes,
		s.loadEixos,
		s.loadTipos,
		s.loadSubtipos,
		s.loadProjetos,
		s.loadTomadores,
		s.loadExecutores,
		s.loadRepassadores,
		s.loadProjetoEixos,
		s.loadProjetoTipos,
		s.loadProjetoSubtipos,
		s.loadFontes,
	}

	for _, step := range steps {
		if err := step(batch, report); err != nil {
			return nil, err
		}
	}

	report.Duration = time.Since(start).Round(time.Millisecond).String()
	log.Infof("batch %s loaded in %s", report.BatchID, report.Duration)
	return report, nil
}

func (s *DefaultLoaderService) loadInstituicoes(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Instituicoes
	key := func(r *contract.InstituicaoRow) string { return r.Codigo }
	if lerr := validateRows(s.Validate, "instituicoes", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.Instituicao, 0, len(rows))
	for _, r := range dedupeRows(rows, key) {
		list = append(list, entity.Instituicao{
			Codigo: r.Codigo,
			Nome:   r.Nome,
			Sigla:  r.Sigla,
			Tipo:   r.Tipo,
		})
	}

	return s.commit(report, "instituicoes", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Instituicoes.UpsertAll(list)
	})
}

func (s *DefaultLoaderService) loadEixos(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Eixos
	key := func(r *contract.EixoRow) string { return intKey(r.ID) }
	if lerr := validateRows(s.Validate, "eixos", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.Eixo, 0, len(rows))
	for _, r := range dedupeRows(rows, key) {
		list = append(list, entity.Eixo{ID: r.ID, Descricao: r.Descricao})
	}

	return s.commit(report, "eixos", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Categorias.UpsertEixos(list)
	})
}

func (s *DefaultLoaderService) loadTipos(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Tipos
	key := func(r *contract.TipoRow) string { return intKey(r.ID) }
	if lerr := validateRows(s.Validate, "tipos", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.Tipo, 0, len(rows))
	for _, r := range dedupeRows(rows, key) {
		list = append(list, entity.Tipo{ID: r.ID, Descricao: r.Descricao, IDEixo: r.IDEixo})
	}

	return s.commit(report, "tipos", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Categorias.UpsertTipos(list)
	})
}

func (s *DefaultLoaderService) loadSubtipos(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Subtipos
	key := func(r *contract.SubtipoRow) string { return intKey(r.ID) }
	if lerr := validateRows(s.Validate, "subtipos", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.Subtipo, 0, len(rows))
	for _, r := range dedupeRows(rows, key) {
		list = append(list, entity.Subtipo{ID: r.ID, Descricao: r.Descricao, IDTipo: r.IDTipo})
	}

	return s.commit(report, "subtipos", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Categorias.UpsertSubtipos(list)
	})
}

func (s *DefaultLoaderService) loadProjetos(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Projetos
	key := func(r *contract.ProjetoRow) string { return r.IDUnico }
	if lerr := validateRows(s.Validate, "projeto_investimento", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.ProjetoInvestimento, 0, len(rows))
	for _, r := range rows {
		list = append(list, entity.ProjetoInvestimento{
			IDUnico:              r.IDUnico,
			Nome:                 r.Nome,
			Descricao:            r.Descricao,
			FuncaoSocial:         r.FuncaoSocial,
			MetaGlobal:           r.MetaGlobal,
			UF:                   r.UF,
			Endereco:             r.Endereco,
			CEP:                  r.CEP,
			DataInicialPrevista:  r.DataInicialPrevista,
			DataFinalPrevista:    r.DataFinalPrevista,
			DataInicialEfetiva:   r.DataInicialEfetiva,
			DataFinalEfetiva:     r.DataFinalEfetiva,
			DataCadastro:         r.DataCadastro,
			DataSituacao:         r.DataSituacao,
			Natureza:             r.Natureza,
			Especie:              r.Especie,
			Situacao:             r.Situacao,
			EmpregosGerados:      r.EmpregosGerados,
			PopulacaoBeneficiada: r.PopulacaoBeneficiada,
			UsoBIM:               r.UsoBIM,
		})
	}

	return s.commit(report, "projeto_investimento", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Projetos.InsertAll(list)
	})
}

func (s *DefaultLoaderService) loadTomadores(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Tomadores
	if lerr := validateRows(s.Validate, "projeto_tomadores", rows, vinculoInstKey); lerr != nil {
		return lerr
	}

	list := make([]entity.ProjetoTomador, 0, len(rows))
	for _, r := range rows {
		list = append(list, entity.ProjetoTomador{IDProjeto: r.IDProjeto, CodigoInstituicao: r.CodigoInstituicao})
	}

	return s.commit(report, "projeto_tomadores", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Vinculos.InsertTomadores(list)
	})
}

func (s *DefaultLoaderService) loadExecutores(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Executores
	if lerr := validateRows(s.Validate, "projeto_executores", rows, vinculoInstKey); lerr != nil {
		return lerr
	}

	list := make([]entity.ProjetoExecutor, 0, len(rows))
	for _, r := range rows {
		list = append(list, entity.ProjetoExecutor{IDProjeto: r.IDProjeto, CodigoInstituicao: r.CodigoInstituicao})
	}

	return s.commit(report, "projeto_executores", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Vinculos.InsertExecutores(list)
	})
}

func (s *DefaultLoaderService) loadRepassadores(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Repassadores
	if lerr := validateRows(s.Validate, "projeto_repassadores", rows, vinculoInstKey); lerr != nil {
		return lerr
	}

	list := make([]entity.ProjetoRepassador, 0, len(rows))
	for _, r := range rows {
		list = append(list, entity.ProjetoRepassador{IDProjeto: r.IDProjeto, CodigoInstituicao: r.CodigoInstituicao})
	}

	return s.commit(report, "projeto_repassadores", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Vinculos.InsertRepassadores(list)
	})
}

func (s *DefaultLoaderService) loadProjetoEixos(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.ProjetoEixos
	key := func(r *contract.VinculoEixoRow) string { return r.IDProjeto + "/" + intKey(r.IDEixo) }
	if lerr := validateRows(s.Validate, "projeto_eixos", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.ProjetoEixo, 0, len(rows))
	for _, r := range rows {
		list = append(list, entity.ProjetoEixo{IDProjeto: r.IDProjeto, IDEixo: r.IDEixo})
	}

	return s.commit(report, "projeto_eixos", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Vinculos.InsertEixos(list)
	})
}

func (s *DefaultLoaderService) loadProjetoTipos(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.ProjetoTipos
	key := func(r *contract.VinculoTipoRow) string { return r.IDProjeto + "/" + intKey(r.IDTipo) }
	if lerr := validateRows(s.Validate, "projeto_tipos", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.ProjetoTipo, 0, len(rows))
	for _, r := range rows {
		list = append(list, entity.ProjetoTipo{IDProjeto: r.IDProjeto, IDTipo: r.IDTipo})
	}

	return s.commit(report, "projeto_tipos", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Vinculos.InsertTipos(list)
	})
}

func (s *DefaultLoaderService) loadProjetoSubtipos(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.ProjetoSubtipos
	key := func(r *contract.VinculoSubtipoRow) string { return r.IDProjeto + "/" + intKey(r.IDSubtipo) }
	if lerr := validateRows(s.Validate, "projeto_subtipos", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.ProjetoSubtipo, 0, len(rows))
	for _, r := range rows {
		list = append(list, entity.ProjetoSubtipo{IDProjeto: r.IDProjeto, IDSubtipo: r.IDSubtipo})
	}

	return s.commit(report, "projeto_subtipos", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Vinculos.InsertSubtipos(list)
	})
}

func (s *DefaultLoaderService) loadFontes(batch *contract.LoadBatch, report *contract.LoadReport) error {
	rows := batch.Fontes
	key := func(r *contract.FonteDeRecursoRow) string { return r.IDProjeto + "/" + r.Origem }
	if lerr := validateRows(s.Validate, "fontes_de_recurso", rows, key); lerr != nil {
		return lerr
	}

	list := make([]entity.FonteDeRecurso, 0, len(rows))
	for _, r := range rows {
		fonte := entity.FonteDeRecurso{IDProjeto: r.IDProjeto, Origem: r.Origem}
		if r.ValorInvestimentoPrevisto != nil {
			fonte.ValorInvestimentoPrevisto = decimal.NullDecimal{
				Decimal: decimal.NewFromFloat(*r.ValorInvestimentoPrevisto),
				Valid:   true,
			}
		}
		list = append(list, fonte)
	}

	return s.commit(report, "fontes_de_recurso", len(rows), func() (int, int, *repository.FailedRow) {
		return s.Fontes.InsertAll(list)
	})
}

// commit runs one table's batch and records it. Constraint violations come
// back as *contract.LoadError; anything else is an unexpected storage error.
func (s *DefaultLoaderService) commit(report *contract.LoadReport, table string, received int, run func() (int, int, *repository.FailedRow)) error {
	inserted, skipped, failed := run()
	if failed != nil {
		kind, constraint := utils.MapConstraintError(failed.Err)
		if kind == "" {
			log.Errorf("unmapped storage error on %s: %v", table, failed.Err)
			return fmt.Errorf("load %s: %w", table, failed.Err)
		}

		lerr := &contract.LoadError{
			Table:      table,
			Key:        failed.Key,
			Kind:       kind,
			Constraint: constraint,
			Detail:     failed.Err.Error(),
		}
		log.Warnf("batch aborted: %v", lerr)
		return lerr
	}

	report.Tables = append(report.Tables, contract.TableReport{
		Table:    table,
		Received: received,
		Inserted: inserted,
		Skipped:  skipped,
	})
	log.Infof("%s: %d inserted, %d skipped", table, inserted, skipped)
	return nil
}

// validateRows rejects malformed rows before any storage is touched.
func validateRows[T any](validate *validator.Validate, table string, rows []T, key func(*T) string) *contract.LoadError {
	for i := range rows {
		utils.Sanitize(&rows[i])

		err := validate.Struct(&rows[i])
		if err == nil {
			continue
		}

		detail := err.Error()
		if se := apierror.FromValidationError(err); se != nil {
			for field, problems := range se.Errors {
				detail = fmt.Sprintf("field %s: %s", field, problems[0])
				break
			}
		}

		return &contract.LoadError{
			Table:  table,
			Key:    key(&rows[i]),
			Kind:   contract.KindMalformed,
			Detail: detail,
		}
	}
	return nil
}

// dedupeRows keeps the first occurrence of each key, preserving order.
func dedupeRows[T any](rows []T, key func(*T) string) []T {
	seen := make(map[string]struct{}, len(rows))
	out := make([]T, 0, len(rows))
	for i := range rows {
		k := key(&rows[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, rows[i])
	}
	return out
}

func vinculoInstKey(r *contract.VinculoInstituicaoRow) string {
	return r.IDProjeto + "/" + r.CodigoInstituicao
}

func intKey(id int) string {
	return fmt.Sprintf("%d", id)
}
