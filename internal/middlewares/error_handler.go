package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"sheet-template-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const genericErrorMessage = "An unexpected internal server error occurred."

// ErrorHandler renders the last error attached with c.Error as
// {success:false, error:{error, status, details?}}.
func ErrorHandler(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, message, details := classify(err)

		entry := log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})
		if status >= http.StatusInternalServerError {
			entry.WithError(err).Error("request failed")
		} else {
			entry.WithError(err).Warn("request rejected")
		}

		if c.Writer.Written() {
			log.Warn("response already written before error handling")
			return
		}
		writeError(c, status, message, details)
	}
}

func classify(err error) (int, string, any) {
	if e, ok := apperr.As(err); ok {
		if e.Status() >= http.StatusInternalServerError {
			msg := e.Message
			if msg == "" {
				msg = genericErrorMessage
			}
			return e.Status(), msg, nil
		}
		return e.Status(), e.Message, e.Details
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return http.StatusBadRequest, "Validation failed. Please check your input.", fields
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, "Invalid JSON body", nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "Record not found", nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict, "Record already exists", nil
	}

	return http.StatusInternalServerError, genericErrorMessage, nil
}

func writeError(c *gin.Context, status int, message string, details any) {
	body := gin.H{"error": message, "status": status}
	if details != nil {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": body})
}

// NotFound is the NoRoute handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperr.NotFound("Not Found - " + c.Request.URL.Path))
	}
}
