package v1

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
	"github.com/keyops/crypto-keyops/internal/domain/keys"
	"github.com/keyops/crypto-keyops/internal/infrastructure/persistence"
)

// KeyHandler defines the interface for handling key-related endpoints.
type KeyHandler interface {
	Generate(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Encapsulate(ctx *gin.Context)
	Decapsulate(ctx *gin.Context)
}

type keyHandler struct {
	keyVaultService keys.KeyVaultService
}

// NewKeyHandler creates a new KeyHandler.
func NewKeyHandler(keyVaultService keys.KeyVaultService) KeyHandler {
	return &keyHandler{
		keyVaultService: keyVaultService,
	}
}

// Generate handles the POST request to generate and store a key pair.
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid key data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	userID := uuid.New().String() // TODO(keyops): extract user id from auth context

	metas, err := handler.keyVaultService.Generate(ctx, userID, request.Algorithm)
	if err != nil {
		abortWithError(ctx, err, "error generating key")
		return
	}

	listResponse := make([]KeyMetaResponse, 0, len(metas))
	for _, meta := range metas {
		listResponse = append(listResponse, toKeyMetaResponse(meta))
	}
	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list stored key metadata.
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := &keys.KeyQuery{
		Algorithm: ctx.Query("algorithm"),
		Type:      ctx.Query("type"),
	}

	metas, err := handler.keyVaultService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, err, "error listing keys")
		return
	}

	listResponse := make([]KeyMetaResponse, 0, len(metas))
	for _, meta := range metas {
		listResponse = append(listResponse, toKeyMetaResponse(meta))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request for one key's metadata.
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	meta, err := handler.keyVaultService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err, "error fetching key")
		return
	}
	ctx.JSON(http.StatusOK, toKeyMetaResponse(meta))
}

// DownloadByID handles the GET request for a key's raw material.
func (handler *keyHandler) DownloadByID(ctx *gin.Context) {
	material, err := handler.keyVaultService.DownloadByID(ctx, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err, "error downloading key")
		return
	}
	ctx.Data(http.StatusOK, "application/octet-stream", material)
}

// DeleteByID handles the DELETE request for a stored key.
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.keyVaultService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		abortWithError(ctx, err, "error deleting key")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Sign handles the POST request to sign a message with a stored private key.
func (handler *keyHandler) Sign(ctx *gin.Context) {
	var request SignRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid sign data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	message, err := base64.StdEncoding.DecodeString(request.Message)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid message encoding: %v", err))
		return
	}

	signature, err := handler.keyVaultService.Sign(ctx, ctx.Param("id"), message)
	if err != nil {
		abortWithError(ctx, err, "error signing message")
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{
		Signature: base64.StdEncoding.EncodeToString(signature),
	})
}

// Verify handles the POST request to verify a signature with a stored key.
func (handler *keyHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid verify data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	message, err := base64.StdEncoding.DecodeString(request.Message)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid message encoding: %v", err))
		return
	}
	signature, err := base64.StdEncoding.DecodeString(request.Signature)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid signature encoding: %v", err))
		return
	}

	valid, err := handler.keyVaultService.Verify(ctx, ctx.Param("id"), message, signature)
	if err != nil {
		abortWithError(ctx, err, "error verifying signature")
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

// Encapsulate handles the POST request to derive a fresh shared secret
// against a stored public key.
func (handler *keyHandler) Encapsulate(ctx *gin.Context) {
	result, err := handler.keyVaultService.Encapsulate(ctx, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err, "error encapsulating")
		return
	}

	ctx.JSON(http.StatusOK, EncapsulateResponse{
		Ciphertext:   base64.StdEncoding.EncodeToString(result.Ciphertext),
		SharedSecret: base64.StdEncoding.EncodeToString(result.SharedSecret),
	})
}

// Decapsulate handles the POST request to recover a shared secret with a
// stored private key.
func (handler *keyHandler) Decapsulate(ctx *gin.Context) {
	var request DecapsulateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid decapsulate data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(request.Ciphertext)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("invalid ciphertext encoding: %v", err))
		return
	}

	sharedSecret, err := handler.keyVaultService.Decapsulate(ctx, ctx.Param("id"), ciphertext)
	if err != nil {
		abortWithError(ctx, err, "error decapsulating")
		return
	}

	ctx.JSON(http.StatusOK, DecapsulateResponse{
		SharedSecret: base64.StdEncoding.EncodeToString(sharedSecret),
	})
}

func toKeyMetaResponse(meta *keys.KeyMeta) KeyMetaResponse {
	return KeyMetaResponse{
		ID:              meta.ID,
		KeyPairID:       meta.KeyPairID,
		Algorithm:       meta.Algorithm,
		Type:            meta.Type,
		DateTimeCreated: meta.DateTimeCreated,
		UserID:          meta.UserID,
	}
}

func abortWithMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}

// abortWithError maps domain errors to HTTP statuses: unknown keys are 404,
// caller mistakes (bad algorithm, scheme confusion, malformed input) are 400,
// everything else is 500.
func abortWithError(ctx *gin.Context, err error, prefix string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, persistence.ErrKeyNotFound):
		status = http.StatusNotFound
	case errors.Is(err, keyops.ErrUnsupportedAlgorithm),
		errors.Is(err, keyops.ErrSchemeMismatch),
		errors.Is(err, keyops.ErrInvalidKey),
		errors.Is(err, keyops.ErrMalformedSignature),
		errors.Is(err, keyops.ErrMalformedCiphertext),
		errors.Is(err, keyops.ErrLengthMismatch),
		errors.Is(err, keyops.ErrNoPrivateMaterial):
		status = http.StatusBadRequest
	}
	ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("%s: %v", prefix, err)})
}
