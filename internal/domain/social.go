package domain

import "time"

const ProviderGoogle = "google"

type EmailAddress struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
	Primary  bool   `json:"primary"`
}

type SocialApp struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	Name     string `json:"name"`
	ClientID string `json:"client_id"`
	Secret   string `json:"-"`
}

type SocialAccount struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Provider   string         `json:"provider"`
	UID        string         `json:"uid"`
	ExtraData  map[string]any `json:"extra_data"`
	LastLogin  time.Time      `json:"last_login"`
	DateJoined time.Time      `json:"date_joined"`
}

// GoogleProfile é o retorno do endpoint userinfo do Google
type GoogleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

func (p GoogleProfile) ExtraData() map[string]any {
	return map[string]any{
		"id":             p.ID,
		"email":          p.Email,
		"verified_email": p.VerifiedEmail,
		"name":           p.Name,
		"given_name":     p.GivenName,
		"family_name":    p.FamilyName,
		"picture":        p.Picture,
		"locale":         p.Locale,
	}
}

// SocialLogin agrupa o que é necessário para o upsert de um login social
type SocialLogin struct {
	Provider  string
	UID       string
	Email     string
	FirstName string
	LastName  string
	ExtraData map[string]any
	App       SocialApp
}
