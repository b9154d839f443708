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
	"github.com/stretchr/testify/assert"
)

func TestPaywallHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockPaywallCreator)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"public_id":"gallery/photo-1","url":"https://cdn/gallery/photo-1.jpg"}`,
			mockSetup: func(m *MockPaywallCreator) {
				m.EXPECT().
					Create(gomock.Any(), "gallery/photo-1", "https://cdn/gallery/photo-1.jpg", "").
					Return(&models.PaywallDB{
						PublicID:   "gallery/photo-1",
						URL:        "https://cdn/gallery/photo-1.jpg",
						PaywallURL: "https://lnbits/paywall/abc",
					}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{
				"public_id": "gallery/photo-1",
				"url":       "https://cdn/gallery/photo-1.jpg",
				"paywall":   "https://lnbits/paywall/abc",
			},
		},
		{
			name: "creation failure",
			body: `{"public_id":"gallery/photo-1","url":"https://cdn/gallery/photo-1.jpg"}`,
			mockSetup: func(m *MockPaywallCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("payment API unreachable"))
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
			name:         "missing fields",
			body:         `{"public_id":"gallery/photo-1"}`,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "public_id and url are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPaywallCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewPaywallHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/paywalls", bytes.NewBufferString(tt.body))
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
