package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kind_contact_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// httpStatus maps business error codes onto HTTP statuses. Anything
// unmapped is an internal error.
func httpStatus(code int) int {
	switch code {
	case errorx.CodeInvalidParam, errorx.CodeDuplicateName, errorx.CodeUserExist:
		return http.StatusBadRequest
	case errorx.CodeInvalidPassword, errorx.CodeUnauthorized:
		return http.StatusUnauthorized
	case errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleError renders a business error as {"error": msg} with the mapped
// status. Unknown errors are logged and hidden behind a generic message.
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		status := httpStatus(codeErr.Code)
		if status == http.StatusInternalServerError {
			zap.L().Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err),
			)
			c.JSON(status, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(status, gin.H{"error": codeErr.Msg})
		return
	}

	zap.L().Error("unexpected error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// HandleParamError renders a binding failure, translating validator
// errors into per-field messages.
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := removeTopStruct(validationErrs.Translate(Trans))
		parts := make([]string, 0, len(fields))
		for field, msg := range fields {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(parts, "; ")})
		return
	}

	zap.L().Warn("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
