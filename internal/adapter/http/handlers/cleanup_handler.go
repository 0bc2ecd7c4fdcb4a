package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waqaskhan1437/wishesu-sub006/internal/adapter/http/dto/response"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase"
	"github.com/waqaskhan1437/wishesu-sub006/pkg"
)

// CleanupHandler triggers one expiry-reaper sweep.

type CleanupHandler struct {
	usecase usecase.IReaperUseCase
}

func NewCleanupHandler(uc usecase.IReaperUseCase) *CleanupHandler {
	return &CleanupHandler{usecase: uc}
}

func (h *CleanupHandler) RunCleanup(c *gin.Context) {
	log.Printf("[cleanup][handler] sweep start")

	result, err := h.usecase.Sweep(c.Request.Context())
	if err != nil {
		log.Printf("[cleanup][handler] sweep failed err=%v", err)
		appErr := mapCleanupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[cleanup][handler] sweep success archived=%d failed=%d", result.Archived, result.Failed)

	c.JSON(http.StatusOK, response.FromSweepResult(result))
}

func mapCleanupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProviderNotConfigured):
		return pkg.NewDomainErrorSimple("CONFIGURATION_ERROR", "Payment provider not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
