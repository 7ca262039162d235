package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"obrasgov/internal/domain/entity"
)

// DefaultRelatorioRepository holds the derived read views. These are plain
// aggregate queries over the loaded schema; the loader never calls them.
type DefaultRelatorioRepository struct {
	db *gorm.DB
}

func NewRelatorioRepository(db *gorm.DB) *DefaultRelatorioRepository {
	return &DefaultRelatorioRepository{db: db}
}

type ResumoFinanceiroRow struct {
	QtdFontes  int                 `gorm:"column:qtd_fontes"`
	ValorTotal decimal.NullDecimal `gorm:"column:valor_total"`
}

func (r *DefaultRelatorioRepository) ResumoFinanceiro(idProjeto string) (*ResumoFinanceiroRow, error) {
	var row ResumoFinanceiroRow
	err := r.db.Model(&entity.FonteDeRecurso{}).
		Select("COUNT(*) AS qtd_fontes, SUM(valor_investimento_previsto) AS valor_total").
		Where("id_projeto = ?", idProjeto).
		Scan(&row).Error

	if err != nil {
		return nil, err
	}
	return &row, nil
}

// NomesPorPapel returns the institution names linked to a project through the
// given junction table, ordered by name. The table name comes from our own
// entity declarations, never from request input.
func (r *DefaultRelatorioRepository) NomesPorPapel(junctionTable, idProjeto string) ([]string, error) {
	var nomes []string
	err := r.db.Table(junctionTable).
		Joins("JOIN instituicoes ON instituicoes.codigo = "+junctionTable+".codigo_instituicao").
		Where(junctionTable+".id_projeto = ?", idProjeto).
		Order("instituicoes.nome").
		Pluck("instituicoes.nome", &nomes).Error

	if err != nil {
		return nil, err
	}
	return nomes, nil
}

type EstatisticaEixoRow struct {
	IDEixo         int     `gorm:"column:id_eixo"`
	Eixo           string  `gorm:"column:eixo"`
	QtdProjetos    int     `gorm:"column:qtd_projetos"`
	TaxaUsoBIM     float64 `gorm:"column:taxa_uso_bim"`
	TotalEmpregos  int64   `gorm:"column:total_empregos"`
	MediaEmpregos  float64 `gorm:"column:media_empregos"`
	TotalPopulacao int64   `gorm:"column:total_populacao"`
	MediaPopulacao float64 `gorm:"column:media_populacao"`
}

func (r *DefaultRelatorioRepository) EstatisticasPorEixo() ([]EstatisticaEixoRow, error) {
	var rows []EstatisticaEixoRow
	err := r.db.Raw(`
		SELECT e.id                                                   AS id_eixo,
		       e.descricao                                            AS eixo,
		       COUNT(p.id_unico)                                      AS qtd_projetos,
		       AVG(CASE WHEN p.uso_bim = 1 THEN 1.0 ELSE 0.0 END)     AS taxa_uso_bim,
		       COALESCE(SUM(p.empregos_gerados), 0)                   AS total_empregos,
		       COALESCE(AVG(p.empregos_gerados), 0)                   AS media_empregos,
		       COALESCE(SUM(p.populacao_beneficiada), 0)              AS total_populacao,
		       COALESCE(AVG(p.populacao_beneficiada), 0)              AS media_populacao
		FROM eixos e
		JOIN projeto_eixos pe ON pe.id_eixo = e.id
		JOIN projeto_investimento p ON p.id_unico = pe.id_projeto
		GROUP BY e.id, e.descricao
		ORDER BY qtd_projetos DESC, e.descricao`).
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

type ProjetoAtrasadoRow struct {
	IDUnico           string `gorm:"column:id_unico"`
	Nome              string `gorm:"column:nome"`
	Situacao          string `gorm:"column:situacao"`
	DataFinalPrevista string `gorm:"column:data_final_prevista"`
}

// Atrasados lists projects whose planned end date is before the reference
// date and whose situation is not terminal. Dates are ISO text, so string
// comparison orders correctly.
func (r *DefaultRelatorioRepository) Atrasados(reference string) ([]ProjetoAtrasadoRow, error) {
	var rows []ProjetoAtrasadoRow
	err := r.db.Model(&entity.ProjetoInvestimento{}).
		Select("id_unico, nome, situacao, data_final_prevista").
		Where("data_final_prevista IS NOT NULL").
		Where("data_final_prevista < ?", reference).
		Where("situacao NOT IN ?", entity.SituacoesTerminais).
		Order("data_final_prevista").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}
