package entity

// Eixo is the top level of the three-level category hierarchy
// (eixo -> tipo -> subtipo) applied to investment projects.
type Eixo struct {
	ID        int    `gorm:"primaryKey"`
	Descricao string `gorm:"not null"`
}

func (Eixo) TableName() string {
	return "eixos"
}

// Tipo keeps its row when the parent eixo is deleted; id_eixo is set to null
// instead of cascading.
type Tipo struct {
	ID        int    `gorm:"primaryKey"`
	Descricao string `gorm:"not null"`
	IDEixo    *int   `gorm:"column:id_eixo"`

	// Relations
	Eixo *Eixo `gorm:"foreignKey:IDEixo;references:ID;constraint:OnDelete:SET NULL"`
}

func (Tipo) TableName() string {
	return "tipos"
}

type Subtipo struct {
	ID        int    `gorm:"primaryKey"`
	Descricao string `gorm:"not null"`
	IDTipo    *int   `gorm:"column:id_tipo"`

	// Relations
	Tipo *Tipo `gorm:"foreignKey:IDTipo;references:ID;constraint:OnDelete:SET NULL"`
}

func (Subtipo) TableName() string {
	return "subtipos"
}
