package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/o1egl/paseto"
)

// SessionTokenExpiry is how long a console session token stays valid.
const SessionTokenExpiry = 24 * time.Hour

// SessionTokenClaims represents the data in the console token. The backend
// bearer token itself never leaves the server side; the console token only
// references the stored session.
type SessionTokenClaims struct {
	SessionID string    `json:"sessionId"`
	RoleID    int       `json:"roleId"`
	Expiry    time.Time `json:"expiry"`
}

// GetSymmetricKey retrieves the symmetric key from the environment variable.
// Ensures it has the correct length (32 bytes).
func GetSymmetricKey() []byte {
	key := os.Getenv("SYMMETRIC_KEY")
	if len(key) != 32 {
		log.Fatalf("SYMMETRIC_KEY must be 32 bytes long. Current length: %d", len(key))
	}
	return []byte(key)
}

// GenerateSessionToken generates a PASETO token referencing the stored
// session for the given role.
func GenerateSessionToken(sessionID string, roleID int) (string, error) {
	claims := SessionTokenClaims{
		SessionID: sessionID,
		RoleID:    roleID,
		Expiry:    time.Now().Add(SessionTokenExpiry),
	}

	symmetricKey := GetSymmetricKey()
	token, err := paseto.NewV2().Encrypt(symmetricKey, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateSessionToken validates the given token string and checks expiry.
func ValidateSessionToken(tokenString string) (*SessionTokenClaims, error) {
	var claims SessionTokenClaims
	symmetricKey := GetSymmetricKey()

	if err := paseto.NewV2().Decrypt(tokenString, symmetricKey, &claims, nil); err != nil {
		log.Printf("Token decryption failed: %v", err)
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	if time.Now().After(claims.Expiry) {
		log.Printf("Token expired for session %s", claims.SessionID)
		return nil, errors.New("token expired")
	}

	return &claims, nil
}
