package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"obrasgov/internal/contract"
	"obrasgov/internal/utils/apierror"
)

type LoaderService interface {
	Load(batch *contract.LoadBatch) (*contract.LoadReport, error)
}

type DefaultLoadRoute struct {
	LoaderService LoaderService
}

func NewLoadDefault(loaderService LoaderService) *DefaultLoadRoute {
	return &DefaultLoadRoute{LoaderService: loaderService}
}

// CreateLoad takes the whole batch at once; there is no incremental entry
// point. Tables committed before a failure stay committed, which is why the
// failed table is reported precisely instead of pretending a full rollback.
func (l *DefaultLoadRoute) CreateLoad(c echo.Context) error {
	var batch contract.LoadBatch
	if err := c.Bind(&batch); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	report, err := l.LoaderService.Load(&batch)
	if err != nil {
		var lerr *contract.LoadError
		if errors.As(err, &lerr) {
			return c.JSON(statusForKind(lerr.Kind), lerr)
		}
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	return c.JSON(http.StatusCreated, report)
}

func statusForKind(kind string) int {
	switch kind {
	case contract.KindMalformed:
		return http.StatusBadRequest
	case contract.KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}
