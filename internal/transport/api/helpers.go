package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-market/internal/domain"
)

// serviceErrStatus маппит бизнес-ошибки движка на http статусы. Пустое
// сообщение означает внутреннюю ошибку, текст которой наружу не отдается.
func serviceErrStatus(err error) (int, string) {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return http.StatusConflict, stockErr.Error()
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, "record already exists"
	case errors.Is(err, domain.ErrAuthorizationFail), errors.Is(err, domain.ErrPasswordMissMatch):
		return http.StatusUnauthorized, "authorization fail"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient funds"
	case errors.Is(err, domain.ErrInvalidOrderState):
		return http.StatusConflict, "invalid order state"
	case errors.Is(err, domain.ErrEmptyOrder):
		return http.StatusBadRequest, "empty order"
	default:
		return http.StatusInternalServerError, ""
	}
}

func abortWithServiceError(c *gin.Context, err error) {
	status, msg := serviceErrStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate)
		return
	}
	_ = c.Error(err).SetType(gin.ErrorTypePrivate) // полная цепочка - в лог.
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}
