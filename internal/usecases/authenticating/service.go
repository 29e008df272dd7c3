package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/integrator/google"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/timezone"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Register(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	GoogleLogin(ctx context.Context, code, redirectURI string) (*domain.TokenPair, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueTokens(user *domain.User) (*domain.TokenPair, error)
	GenerateStrongPassword(ctx context.Context, targetUserID string) (string, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	google   google.Client
	clock    *timezone.Clock
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, googleClient google.Client, clock *timezone.Clock, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		google:   googleClient,
		clock:    clock,
		cfg:      cfg,
	}
}

// Register cria uma conta pública, sempre com o papel viewer
func (s *Service) Register(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	req.Role = domain.RoleViewer
	return s.createUser(ctx, req)
}

// CreateUser é a criação feita por um administrador, que pode escolher o papel
func (s *Service) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if req.Role == "" {
		req.Role = domain.RoleViewer
	}
	if !req.Role.Valid() {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, fmt.Sprintf("papel inválido: %s", req.Role))
	}
	return s.createUser(ctx, req)
}

func (s *Service) createUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	email := handleEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Email inválido")
	}

	if err := s.ValidatePasswordStrength(req.Password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, err.Error())
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
	})
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error) {
	if req.ID == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	user, err := s.userRepo.GetUserByID(ctx, req.ID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("usuário %s não encontrado", req.ID))
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, fmt.Sprintf("papel inválido: %s", *req.Role))
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); *req.Timezone != "" && err != nil {
			return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, fmt.Sprintf("fuso horário inválido: %s", *req.Timezone))
		}
		user.Timezone = req.Timezone
	}

	// senha nunca é alterada por aqui
	user.PasswordHash = ""
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if !user.IsActive {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	// usuários criados pelo login social não têm senha
	if user.PasswordHash == "" {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Conta sem senha, use o login com Google")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	return s.IssueTokens(user)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Token de atualização é obrigatório")
	}

	claims, err := s.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token de atualização expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token de atualização inválido")
	}

	if claims.TokenType != domain.TokenTypeRefresh {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token informado não é de atualização")
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}
	if !user.IsActive {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	return s.IssueTokens(user)
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.Error(err)
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

// IssueTokens gera o par access/refresh para o usuário
func (s *Service) IssueTokens(user *domain.User) (*domain.TokenPair, error) {
	access, err := s.generateJWT(user, domain.TokenTypeAccess)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	refresh, err := s.generateJWT(user, domain.TokenTypeRefresh)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de atualização")
	}

	return &domain.TokenPair{
		Access:  access,
		Refresh: refresh,
		User:    user.Summary(),
	}, nil
}

func (s *Service) generateJWT(user *domain.User, tokenType domain.TokenType) (string, error) {
	ttl := s.cfg.Auth.AccessTTL
	if tokenType == domain.TokenTypeRefresh {
		ttl = s.cfg.Auth.RefreshTTL
	}

	now := s.clock.Now()
	claims := domain.Claims{
		UserID:    user.ID,
		UserEmail: user.Email,
		UserRole:  user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// GenerateStrongPassword gera e grava uma nova senha para o usuário alvo.
// O acesso é restrito a administradores na rota.
func (s *Service) GenerateStrongPassword(ctx context.Context, targetUserID string) (string, error) {
	targetUser, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if targetUser == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário alvo não encontrado")
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar senha")
	}

	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	targetUser.PasswordHash = hashedPassword
	if err := s.userRepo.UpdateUser(ctx, targetUser); err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return newPassword, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha atual e nova senha são obrigatórias")
	}
	if currentPassword == newPassword {
		return NewAuthError(ErrSamePassword, apiErrors.ErrInvalidRequest, "")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha atual incorreta")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, err.Error())
	}

	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return nil
}

// HashPassword gera o hash bcrypt usado em todas as senhas da aplicação
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

// generateStrongPassword gera uma senha com pelo menos um caractere de cada grupo
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	groups := []string{lowerChars, upperChars, numberChars, specialChars}
	allChars := strings.Join(groups, "")
	password := make([]byte, length)

	for i := range password {
		charset := allChars
		if i < len(groups) {
			charset = groups[i]
		}
		c, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength exige 8 caracteres com letras e números
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var hasLetter, hasNumber bool
	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char), strings.ContainsRune(upperChars, char):
			hasLetter = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		}
	}

	if !hasLetter || !hasNumber {
		return errors.New("a senha deve conter letras e números")
	}
	return nil
}
