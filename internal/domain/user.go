package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsActive     bool      `json:"is_active"`
	Timezone     *string   `json:"timezone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserRequest é o payload de cadastro por email e senha
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}

type UpdateUserRequest struct {
	ID        string  `json:"-"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *Role   `json:"role"`
	IsActive  *bool   `json:"is_active"`
	Timezone  *string `json:"timezone"`
}

// UserSummary é a representação reduzida devolvida junto com os tokens
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Role: u.Role}
}

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"email"`
	UserRole  Role      `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair é a resposta padrão de autenticação
type TokenPair struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserSummary `json:"user"`
}
