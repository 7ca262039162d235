package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"obrasgov/internal/contract"
)

func TestMapConstraintError(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		kind       string
		constraint string
	}{
		{
			"unique",
			"constraint failed: UNIQUE constraint failed: instituicoes.codigo (1555)",
			contract.KindDuplicate,
			"instituicoes.codigo",
		},
		{
			"foreign key",
			"constraint failed: FOREIGN KEY constraint failed (787)",
			contract.KindIntegrity,
			"foreign_key",
		},
		{
			"check",
			"constraint failed: CHECK constraint failed: chk_fonte_valor (275)",
			contract.KindDomain,
			"chk_fonte_valor",
		},
		{
			"not null",
			"constraint failed: NOT NULL constraint failed: projeto_investimento.nome (1299)",
			contract.KindMalformed,
			"projeto_investimento.nome",
		},
		{"unrelated", "disk I/O error", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, constraint := MapConstraintError(errors.New(tt.msg))
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.constraint, constraint)
		})
	}
}

func TestSanitizeTrimsStrings(t *testing.T) {
	row := struct {
		Nome  string
		Tags  []string
		Count int
	}{Nome: "  NOVACAP  ", Tags: []string{" a ", "b"}, Count: 3}

	Sanitize(&row)

	assert.Equal(t, "NOVACAP", row.Nome)
	assert.Equal(t, []string{"a", "b"}, row.Tags)
	assert.Equal(t, 3, row.Count)
}
