package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ctxPatientID extracts the caller's patient id injected by the Auth
// middleware and performs a fast-fail check before any service call: a
// missing or malformed id means the middleware did not run or the token is
// structurally unusable, so reject with 401 before touching any collection.
func ctxPatientID(c echo.Context) (uuid.UUID, error) {
	raw, _ := c.Get("patient_id").(string)
	if raw == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "token missing patient identity")
	}
	return id, nil
}
