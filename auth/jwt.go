package auth

import (
	"errors"
	"fmt"
	"time"

	"student-manager/models"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey string
	expiry    int
	now       func() time.Time
}

func NewJWTService(secretKey string, expiry int) *JWTService {
	return &JWTService{
		secretKey: secretKey,
		expiry:    expiry,
		now:       time.Now,
	}
}

// HashPassword хэширует пароль
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// CheckPassword проверяет пароль
func CheckPassword(password, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// GenerateToken создает JWT токен
func (j *JWTService) GenerateToken(op models.Operator) (string, error) {
	now := j.now()
	expiryTime := now.Add(time.Hour * time.Duration(j.expiry))

	claims := JWTClaims{
		Email: op.Email,
		Role:  op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiryTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   op.Email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken валидирует JWT токен
func (j *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// Authenticator checks the single operator account from the configuration.
type Authenticator struct {
	email        string
	passwordHash string
}

func NewAuthenticator(email, passwordHash string) *Authenticator {
	return &Authenticator{email: email, passwordHash: passwordHash}
}

// Login returns the operator for matching credentials. With no password
// hash configured nobody can log in.
func (a *Authenticator) Login(email, password string) (models.Operator, error) {
	if a.passwordHash == "" || email != a.email || !CheckPassword(password, a.passwordHash) {
		return models.Operator{}, ErrInvalidCredentials
	}
	return models.Operator{Email: a.email, Role: models.RoleOperator}, nil
}
