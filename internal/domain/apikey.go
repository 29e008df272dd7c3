package domain

import "time"

type APIType string

const (
	APIGoogleAds    APIType = "google_ads"
	APIFacebookAds  APIType = "facebook_ads"
	APIInstagramAds APIType = "instagram_ads"
	APILinkedInAds  APIType = "linkedin_ads"
)

func (t APIType) Valid() bool {
	switch t {
	case APIGoogleAds, APIFacebookAds, APIInstagramAds, APILinkedInAds:
		return true
	}
	return false
}

// RequiresSecret indica se a plataforma usa um par chave/segredo
func (t APIType) RequiresSecret() bool {
	return t == APIFacebookAds || t == APIInstagramAds || t == APILinkedInAds
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationFailed   VerificationStatus = "failed"
)

type UserAPIKey struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	APIType            APIType            `json:"api_type"`
	APIName            string             `json:"api_name"`
	AccountID          string             `json:"account_id"`
	DeveloperToken     string             `json:"-"`
	EncryptedKey       string             `json:"-"`
	EncryptedSecret    string             `json:"-"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	IsActive           bool               `json:"is_active"`
	LastVerified       *time.Time         `json:"last_verified,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// APIKeyRequest é o payload de cadastro de credenciais de plataforma
type APIKeyRequest struct {
	APIType        APIType `json:"api_type"`
	APIName        string  `json:"api_name"`
	AccountID      string  `json:"account_id"`
	DeveloperToken string  `json:"developer_token"`
	Key            string  `json:"key"`
	Secret         string  `json:"secret"`
}

// APIKeyResponse expõe apenas a chave mascarada
type APIKeyResponse struct {
	*UserAPIKey
	MaskedKey string `json:"masked_key"`
	HasSecret bool   `json:"has_secret"`
}
