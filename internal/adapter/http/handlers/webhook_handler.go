package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/waqaskhan1437/wishesu-sub006/internal/adapter/http/dto/response"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase"
	"github.com/waqaskhan1437/wishesu-sub006/pkg"
)

// WebhookHandler receives the payment provider's asynchronous events.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleEvent processes one provider delivery. Repeats of the same event are
// expected and acknowledged; only payload-shape problems produce a failure
// response, so the provider's retry queue never wedges on a bad event.
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	payload, err := readEventPayload(c)
	if err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.ProcessEvent(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[webhook][handler] process failed err=%v", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch {
	case outcome.Handled:
		log.Printf("[webhook][handler] event handled order_id=%s", outcome.OrderID)
	case outcome.AlreadyClaimed:
		log.Printf("[webhook][handler] duplicate delivery acknowledged")
	case outcome.Skipped:
		log.Printf("[webhook][handler] event type skipped")
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}

func readEventPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("request body is empty")
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}
	return raw, nil
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookPayload),
		errors.Is(err, usecase.ErrMissingEventType),
		errors.Is(err, usecase.ErrMissingCheckoutSessionID):
		return pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
