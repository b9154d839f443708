package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
	"github.com/sbilibin2017/lnbits-gallery/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSetupAdminHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockAdminCreator)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"admin","password":"secret","email":"admin@example.com"}`,
			mockSetup: func(m *MockAdminCreator) {
				m.EXPECT().
					SetupAdmin(gomock.Any(), "admin", "secret", "admin@example.com").
					Return(&models.UserDB{Username: "admin", Role: models.RoleAdmin}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "Admin created successfully", "username": "admin"},
		},
		{
			name: "admin already exists",
			body: `{"username":"admin","password":"secret"}`,
			mockSetup: func(m *MockAdminCreator) {
				m.EXPECT().
					SetupAdmin(gomock.Any(), "admin", "secret", "").
					Return(nil, services.ErrAdminAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]string{"error": "Admin already exists"},
		},
		{
			name: "internal server error",
			body: `{"username":"admin","password":"secret"}`,
			mockSetup: func(m *MockAdminCreator) {
				m.EXPECT().
					SetupAdmin(gomock.Any(), "admin", "secret", "").
					Return(nil, errors.New("database failure"))
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
		{
			name:         "missing credentials",
			body:         `{"username":"admin"}`,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "username and password are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSetupAdminHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/setup/admin", bytes.NewBufferString(tt.body))
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
