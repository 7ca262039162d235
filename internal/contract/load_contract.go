package contract

import "fmt"

// One row struct per destination table. The caller has already coerced types
// (dates as ISO 8601 text, booleans, floating-point values); validation here
// only rejects rows the schema would refuse anyway, before storage is touched.

type InstituicaoRow struct {
	Codigo string `json:"codigo" validate:"required"`
	Nome   string `json:"nome" validate:"required"`
	Sigla  string `json:"sigla"`
	Tipo   string `json:"tipo"`
}

type EixoRow struct {
	ID        int    `json:"id" validate:"required"`
	Descricao string `json:"descricao" validate:"required"`
}

type TipoRow struct {
	ID        int    `json:"id" validate:"required"`
	Descricao string `json:"descricao" validate:"required"`
	IDEixo    *int   `json:"idEixo"`
}

type SubtipoRow struct {
	ID        int    `json:"id" validate:"required"`
	Descricao string `json:"descricao" validate:"required"`
	IDTipo    *int   `json:"idTipo"`
}

type ProjetoRow struct {
	IDUnico      string `json:"idUnico" validate:"required,projetoid"`
	Nome         string `json:"nome" validate:"required"`
	Descricao    string `json:"descricao"`
	FuncaoSocial string `json:"funcaoSocial"`
	MetaGlobal   string `json:"metaGlobal"`

	UF       string `json:"uf" validate:"omitempty,len=2"`
	Endereco string `json:"endereco"`
	CEP      string `json:"cep"`

	DataInicialPrevista *string `json:"dataInicialPrevista" validate:"omitempty,dataiso"`
	DataFinalPrevista   *string `json:"dataFinalPrevista" validate:"omitempty,dataiso"`
	DataInicialEfetiva  *string `json:"dataInicialEfetiva" validate:"omitempty,dataiso"`
	DataFinalEfetiva    *string `json:"dataFinalEfetiva" validate:"omitempty,dataiso"`
	DataCadastro        *string `json:"dataCadastro" validate:"omitempty,dataiso"`
	DataSituacao        *string `json:"dataSituacao" validate:"omitempty,dataiso"`

	Natureza string `json:"natureza" validate:"required,oneof=Obra 'Projeto de Investimento em Infraestrutura' Outras"`
	Especie  string `json:"especie" validate:"required,oneof=Construção Reforma Ampliação Recuperação Fabricação/Aquisição"`
	Situacao string `json:"situacao" validate:"required,oneof=Cadastrada 'Em execução' Paralisada Concluída Cancelada Inacabada"`

	EmpregosGerados      *int  `json:"empregosGerados" validate:"omitempty,gte=0"`
	PopulacaoBeneficiada *int  `json:"populacaoBeneficiada" validate:"omitempty,gte=0"`
	UsoBIM               *bool `json:"usoBIM"`
}

type FonteDeRecursoRow struct {
	IDProjeto                 string   `json:"idProjeto" validate:"required,projetoid"`
	Origem                    string   `json:"origem" validate:"required,oneof=Federal Estadual Municipal Privado Internacional"`
	ValorInvestimentoPrevisto *float64 `json:"valorInvestimentoPrevisto" validate:"omitempty,gte=0"`
}

type VinculoInstituicaoRow struct {
	IDProjeto         string `json:"idProjeto" validate:"required,projetoid"`
	CodigoInstituicao string `json:"codigoInstituicao" validate:"required"`
}

type VinculoEixoRow struct {
	IDProjeto string `json:"idProjeto" validate:"required,projetoid"`
	IDEixo    int    `json:"idEixo" validate:"required"`
}

type VinculoTipoRow struct {
	IDProjeto string `json:"idProjeto" validate:"required,projetoid"`
	IDTipo    int    `json:"idTipo" validate:"required"`
}

type VinculoSubtipoRow struct {
	IDProjeto string `json:"idProjeto" validate:"required,projetoid"`
	IDSubtipo int    `json:"idSubtipo" validate:"required"`
}

// LoadBatch carries every dataset of one refresh. The loader decides the
// write order; slices may be empty but the batch is always taken whole.
type LoadBatch struct {
	Instituicoes    []InstituicaoRow        `json:"instituicoes"`
	Eixos           []EixoRow               `json:"eixos"`
	Tipos           []TipoRow               `json:"tipos"`
	Subtipos        []SubtipoRow            `json:"subtipos"`
	Projetos        []ProjetoRow            `json:"projetos"`
	Tomadores       []VinculoInstituicaoRow `json:"tomadores"`
	Executores      []VinculoInstituicaoRow `json:"executores"`
	Repassadores    []VinculoInstituicaoRow `json:"repassadores"`
	ProjetoEixos    []VinculoEixoRow        `json:"projetoEixos"`
	ProjetoTipos    []VinculoTipoRow        `json:"projetoTipos"`
	ProjetoSubtipos []VinculoSubtipoRow     `json:"projetoSubtipos"`
	Fontes          []FonteDeRecursoRow     `json:"fontesDeRecurso"`
}

type TableReport struct {
	Table    string `json:"table"`
	Received int    `json:"received"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}

type LoadReport struct {
	BatchID  string        `json:"batchId"`
	Tables   []TableReport `json:"tables"`
	Duration string        `json:"duration"`
}

// Load error kinds, one per way a row can be refused.
const (
	KindMalformed = "malformed"
	KindDomain    = "domain"
	KindIntegrity = "integrity"
	KindDuplicate = "duplicate"
)

// LoadError identifies the table, row key and constraint that stopped a
// batch. Tables already committed before the failing one stay committed.
type LoadError struct {
	Table      string `json:"table"`
	Key        string `json:"key"`
	Kind       string `json:"kind"`
	Constraint string `json:"constraint,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

func (e *LoadError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s load failed at row %q: %s violation (%s)", e.Table, e.Key, e.Kind, e.Constraint)
	}
	return fmt.Sprintf("%s load failed at row %q: %s: %s", e.Table, e.Key, e.Kind, e.Detail)
}
