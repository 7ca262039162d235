package entity

// Enumerations enforced by CHECK constraints on projeto_investimento.
//
// The upstream schema prose mentions a "PII" natureza, but the declared
// constraint list spells it out as "Projeto de Investimento em Infraestrutura";
// the constraint list is authoritative here.
const (
	NaturezaObra  = "Obra"
	NaturezaPII   = "Projeto de Investimento em Infraestrutura"
	NaturezaOutra = "Outras"

	SituacaoCadastrada = "Cadastrada"
	SituacaoEmExecucao = "Em execução"
	SituacaoParalisada = "Paralisada"
	SituacaoConcluida  = "Concluída"
	SituacaoCancelada  = "Cancelada"
	SituacaoInacabada  = "Inacabada"
)

var (
	Naturezas = []string{NaturezaObra, NaturezaPII, NaturezaOutra}
	Especies  = []string{"Construção", "Reforma", "Ampliação", "Recuperação", "Fabricação/Aquisição"}
	Situacoes = []string{
		SituacaoCadastrada, SituacaoEmExecucao, SituacaoParalisada,
		SituacaoConcluida, SituacaoCancelada, SituacaoInacabada,
	}

	// SituacoesTerminais are the states excluded from the overdue listing.
	SituacoesTerminais = []string{SituacaoConcluida, SituacaoCancelada}
)

// ProjetoInvestimento is the main table. IDUnico follows the upstream
// "NNNNN.NN-NN" format. All dates are ISO 8601 text (yyyy-mm-dd), nullable.
type ProjetoInvestimento struct {
	IDUnico      string `gorm:"primaryKey;column:id_unico"`
	Nome         string `gorm:"not null"`
	Descricao    string
	FuncaoSocial string `gorm:"column:funcao_social"`
	MetaGlobal   string `gorm:"column:meta_global"`

	UF       string `gorm:"column:uf;size:2"`
	Endereco string
	CEP      string `gorm:"column:cep"`

	DataInicialPrevista *string `gorm:"column:data_inicial_prevista"`
	DataFinalPrevista   *string `gorm:"column:data_final_prevista"`
	DataInicialEfetiva  *string `gorm:"column:data_inicial_efetiva"`
	DataFinalEfetiva    *string `gorm:"column:data_final_efetiva"`
	DataCadastro        *string `gorm:"column:data_cadastro"`
	DataSituacao        *string `gorm:"column:data_situacao"`

	Natureza string `gorm:"column:natureza;not null;check:chk_projeto_natureza,natureza IN ('Obra','Projeto de Investimento em Infraestrutura','Outras')"`
	Especie  string `gorm:"column:especie;not null;check:chk_projeto_especie,especie IN ('Construção','Reforma','Ampliação','Recuperação','Fabricação/Aquisição')"`
	Situacao string `gorm:"column:situacao;not null;check:chk_projeto_situacao,situacao IN ('Cadastrada','Em execução','Paralisada','Concluída','Cancelada','Inacabada')"`

	EmpregosGerados      *int  `gorm:"column:empregos_gerados"`
	PopulacaoBeneficiada *int  `gorm:"column:populacao_beneficiada"`
	UsoBIM               *bool `gorm:"column:uso_bim"`
}

func (ProjetoInvestimento) TableName() string {
	return "projeto_investimento"
}
