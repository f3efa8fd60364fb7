package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vistara-apps/tipspark-818f-17568736/logic"
	"github.com/vistara-apps/tipspark-818f-17568736/pkg"
)

// abortWithError maps ledger errors to HTTP status codes. Invalid input
// is the caller's fault, chain-confirmation failures are actionable
// (retry once the transfer settles), anything else is a server error.
func abortWithError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, logic.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, pkg.ErrTxNotFound),
		errors.Is(err, pkg.ErrTxFailed),
		errors.Is(err, pkg.ErrSenderMismatch):
		status = http.StatusUnprocessableEntity
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
