package services

import (
	"errors"
	"time"

	"linkly/internal/models"
	"linkly/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// TokenClaims is what a validated bearer token proves about the caller.
type TokenClaims struct {
	UserID string
	Email  string
}

type authClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	db           *gorm.DB
	auditService *AuditService
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func NewAuthService(db *gorm.DB, auditService *AuditService, jwtSecret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		db:           db,
		auditService: auditService,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

// Register creates a user with a bcrypt-hashed password and signs a token
// for the new account. Emails are unique; the first registration wins.
func (s *AuthService) Register(username, email, password, ip string) (*models.User, string, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, "", err
	}

	s.auditService.LogAction(&user.ID, "REGISTER", user.Email, nil, ip)

	return &user, token, nil
}

// Login verifies credentials and signs a fresh token. Unknown email and
// wrong password return the same error.
func (s *AuthService) Login(email, password, ip string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, "", err
	}

	s.auditService.LogAction(&user.ID, "LOGIN", user.Email, nil, ip)

	return &user, token, nil
}

// ValidateToken checks signature and expiry, then confirms the subject still
// resolves to a stored user. Stale claims (e.g. a changed email) are accepted
// as long as the subject exists; there is no revocation list.
func (s *AuthService) ValidateToken(tokenString string) (TokenClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return TokenClaims{}, ErrInvalidToken
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", claims.Subject).Count(&count).Error; err != nil {
		return TokenClaims{}, err
	}
	if count == 0 {
		return TokenClaims{}, ErrInvalidToken
	}

	return TokenClaims{UserID: claims.Subject, Email: claims.Email}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
