package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
	"github.com/sbilibin2017/lnbits-gallery/internal/services"
)

// AdminCreator defines the interface for one-time admin bootstrap.
type AdminCreator interface {
	SetupAdmin(ctx context.Context, username, password, email string) (*models.UserDB, error)
}

// SetupAdminRequest represents the JSON body for admin bootstrap
// swagger:model SetupAdminRequest
type SetupAdminRequest struct {
	// Username
	// required: true
	// default: admin
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`

	// Email
	Email string `json:"email"`
}

// SetupAdminResponse represents a successful admin bootstrap response
// swagger:model SetupAdminResponse
type SetupAdminResponse struct {
	// Success message
	// default: Admin created successfully
	Message string `json:"message"`

	// Admin username
	Username string `json:"username"`
}

// SetupAdminErrorResponse represents an error response for admin bootstrap
// swagger:model SetupAdminErrorResponse
type SetupAdminErrorResponse struct {
	// Error message
	// default: Admin already exists
	Error string `json:"error"`
}

// NewSetupAdminHandler returns an HTTP handler for the one-time admin
// bootstrap. Succeeds only while no admin account exists.
// @Summary Bootstrap the admin account
// @Description Creates the first admin account. Fails once any admin exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param setupAdminRequest body handlers.SetupAdminRequest true "Admin bootstrap request"
// @Success 201 {object} handlers.SetupAdminResponse "Admin successfully created"
// @Failure 400 {object} handlers.SetupAdminErrorResponse "Invalid request"
// @Failure 409 {object} handlers.SetupAdminErrorResponse "Admin already exists"
// @Router /setup/admin [post]
func NewSetupAdminHandler(svc AdminCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetupAdminRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetupAdminErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Username == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetupAdminErrorResponse{
				Error: "username and password are required",
			})
			return
		}

		user, err := svc.SetupAdmin(r.Context(), req.Username, req.Password, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAdminAlreadyExists),
				errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SetupAdminErrorResponse{
					Error: "Admin already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SetupAdminErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SetupAdminResponse{
			Message:  "Admin created successfully",
			Username: user.Username,
		})
	}
}
