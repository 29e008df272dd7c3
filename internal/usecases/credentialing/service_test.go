package credentialing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/repository/mocks"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/secretbox"
	"go.uber.org/mock/gomock"
)

var actor = &domain.Claims{UserID: "u1", UserRole: domain.RoleEditor}

func newService(t *testing.T) (*Service, *mocks.MockAPIKeyRepository, *secretbox.Box) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAPIKeyRepository(ctrl)

	box, err := secretbox.New("test-secret")
	require.NoError(t, err)

	return NewService(repo, box).(*Service), repo, box
}

func TestService_Create(t *testing.T) {
	svc, repo, box := newService(t)

	var stored *domain.UserAPIKey
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key *domain.UserAPIKey) error {
		stored = key
		key.ID = "k1"
		return nil
	})

	response, err := svc.Create(context.Background(), actor, &domain.APIKeyRequest{
		APIType: " Facebook_Ads ",
		Key:     "demo_facebook_key_12345",
		Secret:  "demo_facebook_secret_67890",
	})
	require.NoError(t, err)

	assert.Equal(t, "k1", response.ID)
	assert.Equal(t, "****2345", response.MaskedKey)
	assert.True(t, response.HasSecret)
	assert.Equal(t, domain.APIFacebookAds, stored.APIType)
	assert.Equal(t, "facebook_ads", stored.APIName)
	assert.Equal(t, domain.VerificationPending, stored.VerificationStatus)
	assert.NotContains(t, stored.EncryptedKey, "demo_facebook_key")

	key, err := box.Decrypt(stored.EncryptedKey)
	require.NoError(t, err)
	assert.Equal(t, "demo_facebook_key_12345", key)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.APIKeyRequest
		wantErr error
	}{
		{"tipo desconhecido", &domain.APIKeyRequest{APIType: "twitter_ads", Key: "k"}, ErrInvalidAPIType},
		{"sem chave", &domain.APIKeyRequest{APIType: domain.APIGoogleAds}, ErrKeyRequired},
		{"sem segredo", &domain.APIKeyRequest{APIType: domain.APILinkedInAds, Key: "k"}, ErrSecretRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService(t)
			_, err := svc.Create(context.Background(), actor, tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_GoogleAdsWithoutSecret(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	response, err := svc.Create(context.Background(), actor, &domain.APIKeyRequest{APIType: domain.APIGoogleAds, Key: "demo_google_key_12345"})
	require.NoError(t, err)
	assert.False(t, response.HasSecret)
	assert.Empty(t, response.EncryptedSecret)
}

func TestService_List(t *testing.T) {
	svc, repo, box := newService(t)

	encrypted, err := box.Encrypt("demo_google_key_12345")
	require.NoError(t, err)

	repo.EXPECT().ListByUser(gomock.Any(), "u1").Return([]*domain.UserAPIKey{
		{ID: "k1", EncryptedKey: encrypted},
		{ID: "k2", EncryptedKey: "corrompido", EncryptedSecret: "x"},
	}, nil)

	keys, err := svc.List(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, keys, 2)

	assert.Equal(t, "****2345", keys[0].MaskedKey)
	assert.False(t, keys[0].HasSecret)
	assert.Equal(t, "****", keys[1].MaskedKey)
	assert.True(t, keys[1].HasSecret)
}

func TestService_Delete(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Delete(gomock.Any(), "u1", "k1").Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), actor, "k1"), ErrCredentialMissing)

	repo.EXPECT().Delete(gomock.Any(), "u1", "k2").Return(false, errors.New("down"))
	assert.ErrorIs(t, svc.Delete(context.Background(), actor, "k2"), ErrDatabaseOperation)
}

func TestService_Reveal(t *testing.T) {
	svc, _, _ := newService(t)

	key, err := svc.Seal("u1", &domain.APIKeyRequest{APIType: domain.APIInstagramAds, Key: "ik", Secret: "is"})
	require.NoError(t, err)

	plainKey, plainSecret, err := svc.Reveal(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "ik", plainKey)
	assert.Equal(t, "is", plainSecret)
}
