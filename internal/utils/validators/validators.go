package validators

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// idUnicoRegex matches the obrasgov project identifier format, e.g. "09608.95-95".
var idUnicoRegex = regexp.MustCompile(`^\d{5}\.\d{2}-\d{2}$`)

// IsProjetoID reports whether id follows the "NNNNN.NN-NN" format.
func IsProjetoID(id string) bool {
	return idUnicoRegex.MatchString(id)
}

func ProjetoID(fl validator.FieldLevel) bool {
	id, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return IsProjetoID(id)
}

func DataISO(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(time.DateOnly, value)
	return err == nil
}

// Register installs the custom validations both binaries and the tests use.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("projetoid", ProjetoID)
	_ = validate.RegisterValidation("dataiso", DataISO)
}
