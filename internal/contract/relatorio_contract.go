package contract

import "github.com/shopspring/decimal"

type ResumoFinanceiroResponse struct {
	IDProjeto  string          `json:"idProjeto"`
	QtdFontes  int             `json:"qtdFontes"`
	ValorTotal decimal.Decimal `json:"valorTotal"`
}

type InstituicoesProjetoResponse struct {
	IDProjeto    string   `json:"idProjeto"`
	Tomadores    []string `json:"tomadores"`
	Executores   []string `json:"executores"`
	Repassadores []string `json:"repassadores"`
}

type EstatisticaEixoResponse struct {
	IDEixo         *int    `json:"idEixo"`
	Eixo           string  `json:"eixo"`
	QtdProjetos    int     `json:"qtdProjetos"`
	Percentual     float64 `json:"percentual"`
	TaxaUsoBIM     float64 `json:"taxaUsoBim"`
	TotalEmpregos  int64   `json:"totalEmpregos"`
	MediaEmpregos  float64 `json:"mediaEmpregos"`
	TotalPopulacao int64   `json:"totalPopulacao"`
	MediaPopulacao float64 `json:"mediaPopulacao"`
}

type ProjetoAtrasadoResponse struct {
	IDUnico           string `json:"idUnico"`
	Nome              string `json:"nome"`
	Situacao          string `json:"situacao"`
	DataFinalPrevista string `json:"dataFinalPrevista"`
	DiasAtraso        int    `json:"diasAtraso"`
}
