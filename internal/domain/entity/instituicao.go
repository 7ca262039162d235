package entity

// Instituicao is an organization registered on obrasgov. The same institution
// shows up across many projects under different roles (tomador, executor,
// repassador), so rows are deduplicated by Codigo before loading.
type Instituicao struct {
	Codigo string `gorm:"primaryKey;column:codigo"`
	Nome   string `gorm:"not null"`
	Sigla  string
	Tipo   string
}

func (Instituicao) TableName() string {
	return "instituicoes"
}
