package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/v1/users/alice", "/api/v1/users/{username}"},
		{"/api/v1/users/alice/", "/api/v1/users/{username}/"},
		{"/api/v1/images", "/api/v1/images"},
		{"/api/v1/paywalls", "/api/v1/paywalls"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}

func TestRecordRequest_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordRequest("GET", "/api/v1/images", 200, 0.042)
		RecordRequest("POST", "/api/v1/users/alice", 404, 0.001)
	})
}
