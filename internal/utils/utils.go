package utils

import (
	"reflect"
	"strings"
	"time"

	"obrasgov/internal/contract"
)

// TodayISO is the reference date for overdue checks, formatted like every
// other date in the schema.
func TodayISO() string {
	return time.Now().UTC().Format(time.DateOnly)
}

// MapConstraintError classifies a driver error into the loader's taxonomy
// and extracts the violated constraint name. Empty kind means the error is
// not a constraint violation.
//
// The sqlite driver only exposes constraint failures through the message
// text, e.g. "UNIQUE constraint failed: instituicoes.codigo (1555)".
func MapConstraintError(err error) (kind, constraint string) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return contract.KindIntegrity, "foreign_key"

	case strings.Contains(msg, "UNIQUE constraint failed:"):
		return contract.KindDuplicate, constraintName(msg, "UNIQUE constraint failed:")

	case strings.Contains(msg, "CHECK constraint failed:"):
		return contract.KindDomain, constraintName(msg, "CHECK constraint failed:")

	case strings.Contains(msg, "NOT NULL constraint failed:"):
		return contract.KindMalformed, constraintName(msg, "NOT NULL constraint failed:")

	default:
		return "", ""
	}
}

func constraintName(msg, marker string) string {
	name := msg[strings.Index(msg, marker)+len(marker):]
	if i := strings.Index(name, " ("); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
