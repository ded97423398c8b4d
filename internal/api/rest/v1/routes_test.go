//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockService := new(MockKeyVaultService)

	mockService.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mockService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockService.On("GetByID", mock.Anything, mock.Anything).Return(testKeyMeta("public"), nil)
	mockService.On("DownloadByID", mock.Anything, mock.Anything).Return(nil, nil)
	mockService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)
	mockService.On("Sign", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mockService.On("Verify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	mockService.On("Encapsulate", mock.Anything, mock.Anything).
		Return(&keyops.EncapsulationResult{Ciphertext: []byte{1}, SharedSecret: []byte{2}}, nil)
	mockService.On("Decapsulate", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	r := gin.Default()
	SetupRoutes(r, mockService)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/keyops/keys"},
		{"GET", "/api/v1/keyops/keys"},
		{"GET", "/api/v1/keyops/keys/abc-123"},
		{"GET", "/api/v1/keyops/keys/abc-123/file"},
		{"DELETE", "/api/v1/keyops/keys/abc-123"},
		{"POST", "/api/v1/keyops/keys/abc-123/sign"},
		{"POST", "/api/v1/keyops/keys/abc-123/verify"},
		{"POST", "/api/v1/keyops/keys/abc-123/encapsulate"},
		{"POST", "/api/v1/keyops/keys/abc-123/decapsulate"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404 from the router itself)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}
