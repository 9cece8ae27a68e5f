package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/waitlist-simple/apperrors"
)

// SuccessEnvelope is the response shape for all successful endpoints.
type SuccessEnvelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Meta       interface{} `json:"meta,omitempty"`
	Message    string      `json:"message"`
}

// ErrorEnvelope is the response shape for all failed endpoints.
type ErrorEnvelope struct {
	StatusCode int         `json:"statusCode"`
	Error      interface{} `json:"error"`
	Message    string      `json:"message"`
}

// ErrorBody is the object carried under "error" in the error envelope.
type ErrorBody struct {
	Message string                 `json:"message"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
	Count   int64                  `json:"count,omitempty"`
}

// SendResponse writes a success envelope.
func SendResponse(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, SuccessEnvelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	})
}

// SendResponseWithMeta writes a success envelope with pagination metadata.
func SendResponseWithMeta(c *gin.Context, statusCode int, data interface{}, meta interface{}, message string) {
	c.JSON(statusCode, SuccessEnvelope{
		StatusCode: statusCode,
		Data:       data,
		Meta:       meta,
		Message:    message,
	})
}

// SendError maps a domain error to exactly one status code and writes the
// error envelope. Untyped errors fall through to an opaque 500; their cause
// is logged here, never exposed.
func SendError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	status := apperrors.HTTPStatus(appErr)

	if status >= 500 {
		logrus.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"method": c.Request.Method,
			"status": status,
		}).WithError(unwrapCause(appErr)).Error("Request failed")
	}

	c.JSON(status, ErrorEnvelope{
		StatusCode: status,
		Error: ErrorBody{
			Message: appErr.Message,
			Errors:  appErr.Fields,
			Count:   appErr.Count,
		},
		Message: "Error",
	})
}

// AbortWithError is SendError plus aborting the middleware chain.
func AbortWithError(c *gin.Context, err error) {
	SendError(c, err)
	c.Abort()
}

func unwrapCause(err *apperrors.Error) error {
	if err.Err != nil {
		return err.Err
	}
	return err
}
