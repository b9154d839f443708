package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/middlewares"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
)

// PaywallCreator defines the interface that the paywall service must implement.
type PaywallCreator interface {
	Create(ctx context.Context, publicID, url, createdBy string) (*models.PaywallDB, error)
}

// PaywallRequest represents the JSON body for paywall creation
// swagger:model PaywallRequest
type PaywallRequest struct {
	// Media host public ID of the image
	// required: true
	// default: gallery/photo-1
	PublicID string `json:"public_id"`

	// Full delivery URL of the image
	// required: true
	URL string `json:"url"`
}

// PaywallResponse represents a created paywall record
// swagger:model PaywallResponse
type PaywallResponse struct {
	// Media host public ID
	PublicID string `json:"public_id"`

	// Full delivery URL
	URL string `json:"url"`

	// Paywall page URL
	Paywall string `json:"paywall"`
}

// PaywallErrorResponse represents an error response for paywall creation
// swagger:model PaywallErrorResponse
type PaywallErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewPaywallHandler returns an HTTP handler for paywall creation. The
// authenticated admin from the session claims is recorded as the creator.
// @Summary Create a paywall for an image
// @Description Mints a payment link at the payment host and stores the mapping. Idempotent per image.
// @Tags paywall
// @Accept json
// @Produce json
// @Param paywallRequest body handlers.PaywallRequest true "Paywall creation request"
// @Success 201 {object} handlers.PaywallResponse "Paywall created"
// @Failure 400 {object} handlers.PaywallErrorResponse "Invalid request"
// @Failure 500 {object} handlers.PaywallErrorResponse "Creation failed"
// @Security BearerAuth
// @Router /paywalls [post]
func NewPaywallHandler(svc PaywallCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PaywallRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PaywallErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.PublicID == "" || req.URL == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PaywallErrorResponse{
				Error: "public_id and url are required",
			})
			return
		}

		createdBy := ""
		if claims := middlewares.GetClaimsFromContext(r.Context()); claims != nil {
			createdBy = claims.Username
		}

		record, err := svc.Create(r.Context(), req.PublicID, req.URL, createdBy)
		if err != nil {
			logger.Log.Errorw("paywall creation failed", "public_id", req.PublicID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PaywallErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PaywallResponse{
			PublicID: record.PublicID,
			URL:      record.URL,
			Paywall:  record.PaywallURL,
		})
	}
}
