package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/metrics"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
)

// ImagesLister defines the interface that the gallery service must implement.
type ImagesLister interface {
	ListImages(ctx context.Context) ([]models.Image, error)
}

// ImagesResponse represents a successful gallery listing
// swagger:model ImagesResponse
type ImagesResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Gallery images in media host order
	Images []models.Image `json:"images"`

	// Number of images
	Count int `json:"count"`
}

// ImagesErrorResponse represents a failed gallery listing
// swagger:model ImagesErrorResponse
type ImagesErrorResponse struct {
	// Success flag
	// default: false
	Success bool `json:"success"`

	// Error kind
	// default: Server Error
	Error string `json:"error"`

	// Human-readable message
	Message string `json:"message"`
}

// NewImagesHandler returns an HTTP handler for the gallery listing.
// @Summary List gallery images
// @Description Lists gallery images from the media host with paywall annotations and blur placeholders.
// @Tags gallery
// @Produce json
// @Success 200 {object} handlers.ImagesResponse "Gallery listing"
// @Failure 500 {object} handlers.ImagesErrorResponse "Listing failed"
// @Router /images [get]
func NewImagesHandler(svc ImagesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := svc.ListImages(r.Context())
		if err != nil {
			logger.Log.Errorw("gallery listing failed", "err", err)
			metrics.GalleryListings.WithLabelValues("error").Inc()
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ImagesErrorResponse{
				Success: false,
				Error:   "Server Error",
				Message: "failed to list gallery images",
			})
			return
		}

		metrics.GalleryListings.WithLabelValues("success").Inc()

		if images == nil {
			images = []models.Image{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ImagesResponse{
			Success: true,
			Images:  images,
			Count:   len(images),
		})
	}
}
