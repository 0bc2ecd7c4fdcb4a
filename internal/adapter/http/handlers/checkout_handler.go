package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waqaskhan1437/wishesu-sub006/internal/adapter/http/dto/request"
	"github.com/waqaskhan1437/wishesu-sub006/internal/adapter/http/dto/response"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase"
	"github.com/waqaskhan1437/wishesu-sub006/pkg"
)

// CheckoutHandler handles HTTP requests for checkout initiation.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// InitiateCheckout starts a fixed-plan checkout for a product.
func (h *CheckoutHandler) InitiateCheckout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] initiate start product_id=%d", req.ProductID)

	result, err := h.usecase.InitiateCheckout(c.Request.Context(), req.ProductID, req.Amount, req.Email)
	if err != nil {
		log.Printf("[checkout][handler] initiate failed product_id=%d err=%v", req.ProductID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] initiate success product_id=%d checkout_id=%s", req.ProductID, result.CheckoutID)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// InitiateDynamicPlanCheckout provisions a per-purchase plan and binds a
// checkout session to it.
func (h *CheckoutHandler) InitiateDynamicPlanCheckout(c *gin.Context) {
	var req request.DynamicPlanCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] invalid dynamic-plan body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] dynamic-plan start product_id=%d", req.ProductID)

	result, err := h.usecase.InitiateDynamicPlanCheckout(c.Request.Context(), req.ProductID, req.Amount, req.Email, req.AddonSelections())
	if err != nil {
		log.Printf("[checkout][handler] dynamic-plan failed product_id=%d err=%v", req.ProductID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if result.Warning != "" {
		log.Printf("[checkout][handler] dynamic-plan degraded product_id=%d plan_id=%s warning=%q", req.ProductID, result.PlanID, result.Warning)
	} else {
		log.Printf("[checkout][handler] dynamic-plan success product_id=%d plan_id=%s checkout_id=%s", req.ProductID, result.PlanID, result.CheckoutID)
	}

	c.JSON(http.StatusOK, response.FromDynamicPlanResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoPlanConfigured):
		return pkg.NewDomainErrorSimple("PLAN_NOT_CONFIGURED", "No payment plan configured for this product", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoProviderProduct):
		return pkg.NewDomainErrorSimple("PROVIDER_PRODUCT_NOT_CONFIGURED", "No provider product configured for this store", http.StatusConflict)
	case errors.Is(err, usecase.ErrProviderNotConfigured):
		return pkg.NewDomainErrorSimple("CONFIGURATION_ERROR", "Payment provider not configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrProviderRequest):
		// Provider error text is actionable by an administrator; surface it.
		return pkg.NewDomainError("PROVIDER_REQUEST_FAILED", err.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
