package services

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/utils"
)

// AuthService guards the admin dashboard's mutating operations. It is enabled
// only when an admin credential is configured in the environment; without one
// the API stays open, matching the original deployment's behavior.
type AuthService interface {
	Enabled() bool
	Login(password string) (string, error)
	VerifyToken(tokenString string) error
}

type authService struct {
	log          *logger.Logger
	passwordHash []byte
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger) AuthService {
	serviceLog := log.With("service", "AuthService")

	var passwordHash []byte
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		passwordHash = []byte(hash)
	} else if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
		generated, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			serviceLog.Error("Failed to hash ADMIN_PASSWORD", "error", err)
		} else {
			passwordHash = generated
		}
	}
	if passwordHash == nil {
		serviceLog.Warn("No admin credential configured; admin routes are unprotected")
	}

	accessTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)

	return &authService{
		log:          serviceLog,
		passwordHash: passwordHash,
		jwtSecretKey: utils.GetEnv("ADMIN_JWT_SECRET", "defaultsecret", log),
		accessTTL:    time.Duration(accessTTL) * time.Second,
	}
}

func (as *authService) Enabled() bool {
	return as.passwordHash != nil
}

func (as *authService) Login(password string) (string, error) {
	if !as.Enabled() {
		return "", fmt.Errorf("admin authentication is not configured")
	}
	if err := bcrypt.CompareHashAndPassword(as.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) VerifyToken(tokenString string) error {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
