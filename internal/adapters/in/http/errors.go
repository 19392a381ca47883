package http

import (
	"errors"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error onto an HTTP status code. Unrecognized
// errors become 500 without leaking their message.
func writeError(c echo.Context, err error) error {
	var (
		notFound      *errs.ObjectNotFoundError
		alreadyExists *errs.ObjectAlreadyExistsError
		notAllowed    *errs.ActionNotAllowedError
		required      *errs.ValueIsRequiredError
		invalid       *errs.ValueIsInvalidError
		outOfRange    *errs.ValueIsOutOfRangeError
		unsupported   *errs.QueryUnsupportedError
		unavailable   *errs.StoreUnavailableError
	)

	switch {
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, errorResponse{http.StatusNotFound, err.Error()})
	case errors.As(err, &alreadyExists):
		return c.JSON(http.StatusConflict, errorResponse{http.StatusConflict, err.Error()})
	case errors.As(err, &notAllowed):
		return c.JSON(http.StatusForbidden, errorResponse{http.StatusForbidden, err.Error()})
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		return c.JSON(http.StatusBadRequest, errorResponse{http.StatusBadRequest, err.Error()})
	case errors.As(err, &unsupported):
		return c.JSON(http.StatusNotImplemented, errorResponse{http.StatusNotImplemented, err.Error()})
	case errors.As(err, &unavailable):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{
			http.StatusServiceUnavailable, "storage is temporarily unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{
			http.StatusInternalServerError, "internal error"})
	}
}
