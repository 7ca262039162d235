package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obrasgov/internal/contract"
	"obrasgov/internal/utils/apierror"
)

type mockLoaderService struct {
	report *contract.LoadReport
	err    error
}

func (m *mockLoaderService) Load(_ *contract.LoadBatch) (*contract.LoadReport, error) {
	return m.report, m.err
}

func postLoad(t *testing.T, svc LoaderService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/loads", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	route := NewLoadDefault(svc)
	require.NoError(t, route.CreateLoad(e.NewContext(req, rec)))
	return rec
}

func TestCreateLoad_Success(t *testing.T) {
	svc := &mockLoaderService{report: &contract.LoadReport{
		BatchID: "b-1",
		Tables:  []contract.TableReport{{Table: "eixos", Received: 1, Inserted: 1}},
	}}

	rec := postLoad(t, svc, `{"eixos":[{"id":1,"descricao":"Econômico"}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"batchId":"b-1"`)
}

func TestCreateLoad_MalformedBody(t *testing.T) {
	rec := postLoad(t, &mockLoaderService{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLoad_StatusPerKind(t *testing.T) {
	tests := []struct {
		kind   string
		status int
	}{
		{contract.KindMalformed, http.StatusBadRequest},
		{contract.KindDuplicate, http.StatusConflict},
		{contract.KindIntegrity, http.StatusUnprocessableEntity},
		{contract.KindDomain, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			svc := &mockLoaderService{err: &contract.LoadError{
				Table: "projeto_tomadores",
				Key:   "00001.00-01/26298",
				Kind:  tt.kind,
			}}

			rec := postLoad(t, svc, `{}`)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"key":"00001.00-01/26298"`)
		})
	}
}

type mockRelatorioService struct {
	resumo *contract.ResumoFinanceiroResponse
	apierr apierror.ErrorResponse
}

func (m *mockRelatorioService) GetResumoFinanceiro(string) (*contract.ResumoFinanceiroResponse, apierror.ErrorResponse) {
	return m.resumo, m.apierr
}

func (m *mockRelatorioService) GetInstituicoes(string) (*contract.InstituicoesProjetoResponse, apierror.ErrorResponse) {
	return nil, m.apierr
}

func (m *mockRelatorioService) GetEstatisticas() ([]contract.EstatisticaEixoResponse, apierror.ErrorResponse) {
	return nil, m.apierr
}

func (m *mockRelatorioService) GetAtrasados() ([]contract.ProjetoAtrasadoResponse, apierror.ErrorResponse) {
	return nil, m.apierr
}

func TestGetResumoFinanceiro_InvalidID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projetos/not-an-id/resumo-financeiro", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")

	route := NewRelatorioDefault(&mockRelatorioService{})
	require.NoError(t, route.GetResumoFinanceiro(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid type")
}

func TestGetResumoFinanceiro_NotFound(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projetos/99999.99-99/resumo-financeiro", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99999.99-99")

	route := NewRelatorioDefault(&mockRelatorioService{apierr: apierror.NotFoundError})
	require.NoError(t, route.GetResumoFinanceiro(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
