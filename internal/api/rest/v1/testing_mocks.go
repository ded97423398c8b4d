//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
	"github.com/keyops/crypto-keyops/internal/domain/keys"
)

// MockKeyVaultService is a mock implementation of KeyVaultService
type MockKeyVaultService struct {
	mock.Mock
}

func (m *MockKeyVaultService) Generate(ctx context.Context, userID, algorithm string) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, userID, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyVaultService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyVaultService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyVaultService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyVaultService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

func (m *MockKeyVaultService) Sign(ctx context.Context, keyID string, message []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyVaultService) Verify(ctx context.Context, keyID string, message, signature []byte) (bool, error) {
	args := m.Called(ctx, keyID, message, signature)
	return args.Bool(0), args.Error(1)
}

func (m *MockKeyVaultService) Encapsulate(ctx context.Context, keyID string) (*keyops.EncapsulationResult, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keyops.EncapsulationResult), args.Error(1)
}

func (m *MockKeyVaultService) Decapsulate(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
