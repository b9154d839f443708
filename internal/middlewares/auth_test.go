package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/lnbits-gallery/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	claims := &jwt.Claims{
		UserID:   uuid.New(),
		Username: "alice",
		Role:     "admin",
	}

	tests := []struct {
		name           string
		opts           []AuthOpt
		setupMock      func(m *MockTokener)
		expectedStatus int
		expectNext     bool
	}{
		{
			name: "valid token",
			setupMock: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name: "missing token",
			setupMock: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			setupMock: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad", nil)
				m.EXPECT().GetClaims(gomock.Any(), "bad").Return(nil, errors.New("signature invalid"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "role satisfied",
			opts: []AuthOpt{WithRequiredRole("admin")},
			setupMock: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name: "role not satisfied",
			opts: []AuthOpt{WithRequiredRole("admin")},
			setupMock: func(m *MockTokener) {
				user := &jwt.Claims{UserID: uuid.New(), Username: "bob", Role: "user"}
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(user, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockTokener(ctrl)
			tt.setupMock(mockTokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got := GetClaimsFromContext(r.Context())
				assert.NotNil(t, got)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, tt.opts...)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/images", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}

func TestAuthMiddleware_LoginRedirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	handler := AuthMiddleware(mockTokener, WithLoginRedirect("/login"))(next)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestGetClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetClaimsFromContext(req.Context()))
}
