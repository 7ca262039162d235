package service

import (
	"time"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"obrasgov/internal/contract"
	"obrasgov/internal/domain/sqlite/repository"
	"obrasgov/internal/utils"
	"obrasgov/internal/utils/apierror"
)

type RelatorioRepository interface {
	ResumoFinanceiro(idProjeto string) (*repository.ResumoFinanceiroRow, error)
	NomesPorPapel(junctionTable, idProjeto string) ([]string, error)
	EstatisticasPorEixo() ([]repository.EstatisticaEixoRow, error)
	Atrasados(reference string) ([]repository.ProjetoAtrasadoRow, error)
}

type DefaultRelatorioService struct {
	Relatorios RelatorioRepository
	Projetos   ProjetoRepository
}

func NewRelatorioService(relatorios RelatorioRepository, projetos ProjetoRepository) *DefaultRelatorioService {
	return &DefaultRelatorioService{Relatorios: relatorios, Projetos: projetos}
}

func (s *DefaultRelatorioService) GetResumoFinanceiro(idProjeto string) (*contract.ResumoFinanceiroResponse, apierror.ErrorResponse) {
	projeto, err := s.Projetos.FindByID(idProjeto)
	if err != nil {
		log.Errorf("failed to fetch project %s: %v", idProjeto, err)
		return nil, apierror.InternalServerError
	}

	if projeto == nil {
		return nil, apierror.NotFoundError
	}

	row, err := s.Relatorios.ResumoFinanceiro(idProjeto)
	if err != nil {
		log.Errorf("failed to summarize funding for %s: %v", idProjeto, err)
		return nil, apierror.InternalServerError
	}

	total := decimal.Zero
	if row.ValorTotal.Valid {
		total = row.ValorTotal.Decimal
	}

	return &contract.ResumoFinanceiroResponse{
		IDProjeto:  idProjeto,
		QtdFontes:  row.QtdFontes,
		ValorTotal: total,
	}, nil
}

func (s *DefaultRelatorioService) GetInstituicoes(idProjeto string) (*contract.InstituicoesProjetoResponse, apierror.ErrorResponse) {
	projeto, err := s.Projetos.FindByID(idProjeto)
	if err != nil {
		log.Errorf("failed to fetch project %s: %v", idProjeto, err)
		return nil, apierror.InternalServerError
	}

	if projeto == nil {
		return nil, apierror.NotFoundError
	}

	resp := &contract.InstituicoesProjetoResponse{IDProjeto: idProjeto}
	for _, role := range []struct {
		table string
		dst   *[]string
	}{
		{"projeto_tomadores", &resp.Tomadores},
		{"projeto_executores", &resp.Executores},
		{"projeto_repassadores", &resp.Repassadores},
	} {
		nomes, err := s.Relatorios.NomesPorPapel(role.table, idProjeto)
		if err != nil {
			log.Errorf("failed to fetch %s for %s: %v", role.table, idProjeto, err)
			return nil, apierror.InternalServerError
		}
		*role.dst = nomes
	}

	return resp, nil
}

func (s *DefaultRelatorioService) GetEstatisticas() ([]contract.EstatisticaEixoResponse, apierror.ErrorResponse) {
	total, err := s.Projetos.Count()
	if err != nil {
		log.Errorf("failed to count projects: %v", err)
		return nil, apierror.InternalServerError
	}

	rows, err := s.Relatorios.EstatisticasPorEixo()
	if err != nil {
		log.Errorf("failed to compute per-axis statistics: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]contract.EstatisticaEixoResponse, len(rows))
	for i, row := range rows {
		id := row.IDEixo
		percentual := 0.0
		if total > 0 {
			percentual = float64(row.QtdProjetos) / float64(total) * 100
		}

		resp[i] = contract.EstatisticaEixoResponse{
			IDEixo:         &id,
			Eixo:           row.Eixo,
			QtdProjetos:    row.QtdProjetos,
			Percentual:     percentual,
			TaxaUsoBIM:     row.TaxaUsoBIM,
			TotalEmpregos:  row.TotalEmpregos,
			MediaEmpregos:  row.MediaEmpregos,
			TotalPopulacao: row.TotalPopulacao,
			MediaPopulacao: row.MediaPopulacao,
		}
	}
	return resp, nil
}

func (s *DefaultRelatorioService) GetAtrasados() ([]contract.ProjetoAtrasadoResponse, apierror.ErrorResponse) {
	hoje := utils.TodayISO()
	rows, err := s.Relatorios.Atrasados(hoje)
	if err != nil {
		log.Errorf("failed to list overdue projects: %v", err)
		return nil, apierror.InternalServerError
	}

	ref, _ := time.Parse(time.DateOnly, hoje)
	resp := make([]contract.ProjetoAtrasadoResponse, len(rows))
	for i, row := range rows {
		dias := 0
		if fim, perr := time.Parse(time.DateOnly, row.DataFinalPrevista); perr == nil {
			dias = int(ref.Sub(fim).Hours() / 24)
		}

		resp[i] = contract.ProjetoAtrasadoResponse{
			IDUnico:           row.IDUnico,
			Nome:              row.Nome,
			Situacao:          row.Situacao,
			DataFinalPrevista: row.DataFinalPrevista,
			DiasAtraso:        dias,
		}
	}
	return resp, nil
}
