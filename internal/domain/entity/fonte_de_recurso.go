package entity

import "github.com/shopspring/decimal"

const (
	OrigemFederal       = "Federal"
	OrigemEstadual      = "Estadual"
	OrigemMunicipal     = "Municipal"
	OrigemPrivado       = "Privado"
	OrigemInternacional = "Internacional"
)

var Origens = []string{
	OrigemFederal, OrigemEstadual, OrigemMunicipal, OrigemPrivado, OrigemInternacional,
}

// FonteDeRecurso is one planned investment stream of a project. Rows are
// deleted together with their project.
type FonteDeRecurso struct {
	ID        uint   `gorm:"primaryKey"`
	IDProjeto string `gorm:"column:id_projeto;not null"`
	Origem    string `gorm:"column:origem;not null;check:chk_fonte_origem,origem IN ('Federal','Estadual','Municipal','Privado','Internacional')"`

	// Nullable; NULL passes the check, negative values do not.
	ValorInvestimentoPrevisto decimal.NullDecimal `gorm:"column:valor_investimento_previsto;type:decimal(18,2);check:chk_fonte_valor,valor_investimento_previsto >= 0"`

	// Relations
	Projeto *ProjetoInvestimento `gorm:"foreignKey:IDProjeto;references:IDUnico;constraint:OnDelete:CASCADE"`
}

func (FonteDeRecurso) TableName() string {
	return "fontes_de_recurso"
}
