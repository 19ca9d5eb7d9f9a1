package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/kelasbackend/forum-api/domain"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the uniform response body:
// success carries data, fail/error carry a message.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func successBody(data any) Envelope {
	return Envelope{
		Status: StatusSuccess,
		Data:   data,
	}
}

func failBody(message string) Envelope {
	return Envelope{
		Status:  StatusFail,
		Message: message,
	}
}

// respondError is the single translation point between domain errors
// and HTTP responses.
func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	status := StatusFail
	message := err.Error()
	if code >= http.StatusInternalServerError {
		status = StatusError
		message = domain.ErrInternalServerError.Error()
	}

	c.JSON(code, Envelope{
		Status:  status,
		Message: message,
	})
}

// respondBindError turns a gin binding failure into a 400 naming the
// offending field.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, failBody(bindMessage(err)))
}

// getStatusCode will get the HTTP status code of a domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

func bindMessage(err error) string {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 {
		fe := verr[0]
		return fmt.Sprintf("field %s failed on the '%s' rule", strings.ToLower(fe.Field()), fe.Tag())
	}
	return err.Error()
}
