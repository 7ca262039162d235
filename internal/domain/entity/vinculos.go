package entity

// Junction tables linking projects to institutions (one table per role) and
// to category nodes. Composite primary keys keep each pair unique per
// project; every side cascades on delete.

type ProjetoTomador struct {
	IDProjeto         string `gorm:"primaryKey;column:id_projeto"`
	CodigoInstituicao string `gorm:"primaryKey;column:codigo_instituicao"`

	// Relations
	Projeto     *ProjetoInvestimento `gorm:"foreignKey:IDProjeto;references:IDUnico;constraint:OnDelete:CASCADE"`
	Instituicao *Instituicao         `gorm:"foreignKey:CodigoInstituicao;references:Codigo;constraint:OnDelete:CASCADE"`
}

func (ProjetoTomador) TableName() string {
	return "projeto_tomadores"
}

type ProjetoExecutor struct {
	IDProjeto         string `gorm:"primaryKey;column:id_projeto"`
	CodigoInstituicao string `gorm:"primaryKey;column:codigo_instituicao"`

	// Relations
	Projeto     *ProjetoInvestimento `gorm:"foreignKey:IDProjeto;references:IDUnico;constraint:OnDelete:CASCADE"`
	Instituicao *Instituicao         `gorm:"foreignKey:CodigoInstituicao;references:Codigo;constraint:OnDelete:CASCADE"`
}

func (ProjetoExecutor) TableName() string {
	return "projeto_executores"
}

type ProjetoRepassador struct {
	IDProjeto         string `gorm:"primaryKey;column:id_projeto"`
	CodigoInstituicao string `gorm:"primaryKey;column:codigo_instituicao"`

	// Relations
	Projeto     *ProjetoInvestimento `gorm:"foreignKey:IDProjeto;references:IDUnico;constraint:OnDelete:CASCADE"`
	Instituicao *Instituicao         `gorm:"foreignKey:CodigoInstituicao;references:Codigo;constraint:OnDelete:CASCADE"`
}

func (ProjetoRepassador) TableName() string {
	return "projeto_repassadores"
}

type ProjetoEixo struct {
	IDProjeto string `gorm:"primaryKey;column:id_projeto"`
	IDEixo    int    `gorm:"primaryKey;column:id_eixo"`

	// Relations
	Projeto *ProjetoInvestimento `gorm:"foreignKey:IDProjeto;references:IDUnico;constraint:OnDelete:CASCADE"`
	Eixo    *Eixo                `gorm:"foreignKey:IDEixo;references:ID;constraint:OnDelete:CASCADE"`
}

func (ProjetoEixo) TableName() string {
	return "projeto_eixos"
}

type ProjetoTipo struct {
	IDProjeto string `gorm:"primaryKey;column:id_projeto"`
	IDTipo    int    `gorm:"primaryKey;column:id_tipo"`

	// Relations
	Projeto *ProjetoInvestimento `gorm:"foreignKey:IDProjeto;references:IDUnico;constraint:OnDelete:CASCADE"`
	Tipo    *Tipo                `gorm:"foreignKey:IDTipo;references:ID;constraint:OnDelete:CASCADE"`
}

func (ProjetoTipo) TableName() string {
	return "projeto_tipos"
}

type ProjetoSubtipo struct {
	IDProjeto string `gorm:"primaryKey;column:id_projeto"`
	IDSubtipo int    `gorm:"primaryKey;column:id_subtipo"`

	// Relations
	Projeto *ProjetoInvestimento `gorm:"foreignKey:IDProjeto;references:IDUnico;constraint:OnDelete:CASCADE"`
	Subtipo *Subtipo             `gorm:"foreignKey:IDSubtipo;references:ID;constraint:OnDelete:CASCADE"`
}

func (ProjetoSubtipo) TableName() string {
	return "projeto_subtipos"
}
