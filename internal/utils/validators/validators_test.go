package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   string  `validate:"required,projetoid"`
	Data *string `validate:"omitempty,dataiso"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	Register(v)
	return v
}

func TestProjetoID(t *testing.T) {
	v := newValidate(t)

	valid := []string{"09608.95-95", "00001.00-01", "12345.67-89"}
	for _, id := range valid {
		assert.NoError(t, v.Struct(&sample{ID: id}), "id %q should be valid", id)
	}

	invalid := []string{"9608.95-95", "09608-95.95", "09608.95-9", "abcde.fg-hi", "09608.95-950"}
	for _, id := range invalid {
		assert.Error(t, v.Struct(&sample{ID: id}), "id %q should be rejected", id)
	}
}

func TestDataISO(t *testing.T) {
	v := newValidate(t)

	ok := "2024-02-29"
	require.NoError(t, v.Struct(&sample{ID: "00001.00-01", Data: &ok}))

	for _, bad := range []string{"29/02/2024", "2024-13-01", "2024-2-1", "ontem"} {
		assert.Error(t, v.Struct(&sample{ID: "00001.00-01", Data: &bad}), "date %q should be rejected", bad)
	}
}
