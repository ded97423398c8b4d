package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/keyops/crypto-keyops/internal/domain/keys"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, keyVaultService keys.KeyVaultService) {
	v1 := r.Group(BasePath)

	keyHandler := NewKeyHandler(keyVaultService)
	v1.POST("/keys", keyHandler.Generate)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)
	v1.POST("/keys/:id/sign", keyHandler.Sign)
	v1.POST("/keys/:id/verify", keyHandler.Verify)
	v1.POST("/keys/:id/encapsulate", keyHandler.Encapsulate)
	v1.POST("/keys/:id/decapsulate", keyHandler.Decapsulate)
}
