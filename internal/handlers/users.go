package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
	"github.com/sbilibin2017/lnbits-gallery/internal/services"
)

// UsersLister defines the interface for listing accounts.
type UsersLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// UserUpdater defines the interface for partial account updates.
type UserUpdater interface {
	UpdateUser(ctx context.Context, username string, password, email, role *string) (bool, error)
}

// UserDeleter defines the interface for account removal.
type UserDeleter interface {
	DeleteUser(ctx context.Context, username string) (bool, error)
}

// UsersResponse represents the account listing
// swagger:model UsersResponse
type UsersResponse struct {
	// Accounts without password hashes
	Users []models.UserDB `json:"users"`

	// Number of accounts
	Count int `json:"count"`
}

// UserUpdateRequest represents a partial account update
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// New password, re-hashed before storing
	Password *string `json:"password,omitempty"`

	// New email
	Email *string `json:"email,omitempty"`

	// New role, "user" or "admin"
	Role *string `json:"role,omitempty"`
}

// UserMessageResponse represents a user management outcome
// swagger:model UserMessageResponse
type UserMessageResponse struct {
	// Outcome message
	Message string `json:"message"`
}

// UserErrorResponse represents a user management error
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler for the account listing.
// @Summary List accounts
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Account listing"
// @Failure 500 {object} handlers.UserErrorResponse "Listing failed"
// @Security BearerAuth
// @Router /users [get]
func NewListUsersHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if users == nil {
			users = []models.UserDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UsersResponse{
			Users: users,
			Count: len(users),
		})
	}
}

// NewUpdateUserHandler returns an HTTP handler for partial account updates.
// @Summary Update an account
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Fields to update"
// @Success 200 {object} handlers.UserMessageResponse "Account updated"
// @Failure 400 {object} handlers.UserErrorResponse "Invalid request"
// @Failure 404 {object} handlers.UserErrorResponse "Account not found"
// @Security BearerAuth
// @Router /users/{username} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		updated, err := svc.UpdateUser(r.Context(), username, req.Password, req.Email, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRole):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UserErrorResponse{
					Error: "invalid role",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if !updated {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "User not found",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserMessageResponse{
			Message: "User updated successfully",
		})
	}
}

// NewDeleteUserHandler returns an HTTP handler for account removal.
// @Summary Delete an account
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.UserMessageResponse "Account deleted"
// @Failure 404 {object} handlers.UserErrorResponse "Account not found"
// @Security BearerAuth
// @Router /users/{username} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		deleted, err := svc.DeleteUser(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if !deleted {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "User not found",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserMessageResponse{
			Message: "User deleted successfully",
		})
	}
}
