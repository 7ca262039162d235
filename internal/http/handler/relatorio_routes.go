package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obrasgov/internal/contract"
	"obrasgov/internal/utils/apierror"
	"obrasgov/internal/utils/validators"
)

type RelatorioService interface {
	GetResumoFinanceiro(idProjeto string) (*contract.ResumoFinanceiroResponse, apierror.ErrorResponse)
	GetInstituicoes(idProjeto string) (*contract.InstituicoesProjetoResponse, apierror.ErrorResponse)
	GetEstatisticas() ([]contract.EstatisticaEixoResponse, apierror.ErrorResponse)
	GetAtrasados() ([]contract.ProjetoAtrasadoResponse, apierror.ErrorResponse)
}

type DefaultRelatorioRoute struct {
	RelatorioService RelatorioService
}

func NewRelatorioDefault(relatorioService RelatorioService) *DefaultRelatorioRoute {
	return &DefaultRelatorioRoute{RelatorioService: relatorioService}
}

func (r *DefaultRelatorioRoute) GetResumoFinanceiro(c echo.Context) error {
	id, apierr := projetoIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resumo, apierr := r.RelatorioService.GetResumoFinanceiro(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resumo)
}

func (r *DefaultRelatorioRoute) GetInstituicoes(c echo.Context) error {
	id, apierr := projetoIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	instituicoes, apierr := r.RelatorioService.GetInstituicoes(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, instituicoes)
}

func projetoIDParam(c echo.Context) (string, apierror.ErrorResponse) {
	id := c.Param("id")
	if !validators.IsProjetoID(id) {
		return "", apierror.NewInvalidParamTypeError("id", "project id (NNNNN.NN-NN)")
	}
	return id, nil
}

func (r *DefaultRelatorioRoute) GetEstatisticas(c echo.Context) error {
	stats, apierr := r.RelatorioService.GetEstatisticas()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"eixos": stats}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultRelatorioRoute) GetAtrasados(c echo.Context) error {
	atrasados, apierr := r.RelatorioService.GetAtrasados()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"projetos": atrasados}
	return c.JSON(http.StatusOK, &resp)
}
