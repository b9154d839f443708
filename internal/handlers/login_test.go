package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/lnbits-gallery/internal/jwt"
	"github.com/sbilibin2017/lnbits-gallery/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"token": "JWT_TOKEN"},
		},
		{
			name: "invalid credentials",
			body: `{"username":"john","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid username or password"},
		},
		{
			name: "internal server error",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestLoginHandler_SetsSessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSvc.EXPECT().Login(gomock.Any(), "john", "secret").Return("JWT_TOKEN", nil)

	handler := NewLoginHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewBufferString(`{"username":"john","password":"secret"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == jwt.SessionCookie {
			found = c
		}
	}
	assert.NotNil(t, found)
	assert.Equal(t, "JWT_TOKEN", found.Value)
	assert.True(t, found.HttpOnly)
}
