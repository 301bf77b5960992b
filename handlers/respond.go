package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// apiError maps service errors to HTTP responses. Validation, not-found and
// conflict conditions carry their message through; anything else is logged
// and surfaced generically.
func apiError(e *core.RequestEvent, op string, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return e.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return e.JSON(http.StatusNotFound, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrConflict):
		return e.JSON(http.StatusConflict, map[string]string{"message": err.Error()})
	default:
		log.Printf("%s: %v", op, err)
		return e.JSON(http.StatusInternalServerError, map[string]string{"message": "Something went wrong. Please try again."})
	}
}

// writeAttachment sends raw bytes as a downloadable file.
func writeAttachment(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(body)
	return err
}
