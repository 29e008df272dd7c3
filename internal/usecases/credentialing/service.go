package credentialing

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/secretbox"
)

type CredentialService interface {
	Create(ctx context.Context, actor *domain.Claims, request *domain.APIKeyRequest) (*domain.APIKeyResponse, error)
	List(ctx context.Context, actor *domain.Claims) ([]*domain.APIKeyResponse, error)
	Delete(ctx context.Context, actor *domain.Claims, keyID string) error
	Reveal(ctx context.Context, key *domain.UserAPIKey) (string, string, error)
}

type Service struct {
	apiKeyRepository repository.APIKeyRepository
	box              *secretbox.Box
}

func NewService(apiKeyRepository repository.APIKeyRepository, box *secretbox.Box) CredentialService {
	return &Service{
		apiKeyRepository: apiKeyRepository,
		box:              box,
	}
}

// Seal valida o pedido e monta a credencial já criptografada
func (s *Service) Seal(userID string, request *domain.APIKeyRequest) (*domain.UserAPIKey, error) {
	request.APIType = domain.APIType(strings.ToLower(strings.TrimSpace(string(request.APIType))))
	request.Key = strings.TrimSpace(request.Key)
	request.Secret = strings.TrimSpace(request.Secret)

	switch {
	case !request.APIType.Valid():
		return nil, NewCredentialError(ErrInvalidAPIType, apiErrors.ErrInvalidFormat, string(request.APIType))
	case request.Key == "":
		return nil, NewCredentialError(ErrKeyRequired, apiErrors.ErrMissingRequiredData, "key é obrigatório")
	case request.APIType.RequiresSecret() && request.Secret == "":
		return nil, NewCredentialError(ErrSecretRequired, apiErrors.ErrMissingRequiredData, "secret é obrigatório para "+string(request.APIType))
	}

	encryptedKey, err := s.box.Encrypt(request.Key)
	if err != nil {
		return nil, NewCredentialError(ErrEncryption, apiErrors.ErrInternalServer, err.Error())
	}

	encryptedSecret, err := s.box.Encrypt(request.Secret)
	if err != nil {
		return nil, NewCredentialError(ErrEncryption, apiErrors.ErrInternalServer, err.Error())
	}

	name := strings.TrimSpace(request.APIName)
	if name == "" {
		name = string(request.APIType)
	}

	return &domain.UserAPIKey{
		UserID:             userID,
		APIType:            request.APIType,
		APIName:            name,
		AccountID:          strings.TrimSpace(request.AccountID),
		DeveloperToken:     strings.TrimSpace(request.DeveloperToken),
		EncryptedKey:       encryptedKey,
		EncryptedSecret:    encryptedSecret,
		VerificationStatus: domain.VerificationPending,
		IsActive:           true,
	}, nil
}

func (s *Service) Create(ctx context.Context, actor *domain.Claims, request *domain.APIKeyRequest) (*domain.APIKeyResponse, error) {
	key, err := s.Seal(actor.UserID, request)
	if err != nil {
		return nil, err
	}

	if err := s.apiKeyRepository.Create(ctx, key); err != nil {
		return nil, NewCredentialError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  actor.UserID,
		"api_type": key.APIType,
	}).Info("Credencial de plataforma cadastrada")

	return &domain.APIKeyResponse{
		UserAPIKey: key,
		MaskedKey:  secretbox.Mask(request.Key),
		HasSecret:  request.Secret != "",
	}, nil
}

func (s *Service) List(ctx context.Context, actor *domain.Claims) ([]*domain.APIKeyResponse, error) {
	keys, err := s.apiKeyRepository.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, NewCredentialError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	response := make([]*domain.APIKeyResponse, 0, len(keys))
	for _, key := range keys {
		plain, err := s.box.Decrypt(key.EncryptedKey)
		masked := secretbox.Mask(plain)
		if err != nil {
			// chave gravada com outro segredo, a listagem continua sem o sufixo
			logrus.WithError(err).WithField("key_id", key.ID).Warn("Não foi possível descriptografar a credencial")
			masked = secretbox.Mask("")
		}

		response = append(response, &domain.APIKeyResponse{
			UserAPIKey: key,
			MaskedKey:  masked,
			HasSecret:  key.EncryptedSecret != "",
		})
	}

	return response, nil
}

func (s *Service) Delete(ctx context.Context, actor *domain.Claims, keyID string) error {
	deleted, err := s.apiKeyRepository.Delete(ctx, actor.UserID, keyID)
	if err != nil {
		return NewCredentialErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, keyID, err.Error())
	}
	if !deleted {
		return NewCredentialErrorWithID(ErrCredentialMissing, apiErrors.ErrResourceNotFound, keyID, "")
	}
	return nil
}

// Reveal devolve a chave e o segredo em texto puro para uso interno
func (s *Service) Reveal(_ context.Context, key *domain.UserAPIKey) (string, string, error) {
	plainKey, err := s.box.Decrypt(key.EncryptedKey)
	if err != nil {
		return "", "", NewCredentialErrorWithID(ErrEncryption, apiErrors.ErrInternalServer, key.ID, err.Error())
	}

	plainSecret, err := s.box.Decrypt(key.EncryptedSecret)
	if err != nil {
		return "", "", NewCredentialErrorWithID(ErrEncryption, apiErrors.ErrInternalServer, key.ID, err.Error())
	}

	return plainKey, plainSecret, nil
}
