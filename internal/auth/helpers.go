package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionTTL bounds every session token; a fresh token is minted on each
	// successful login.
	SessionTTL = 24 * time.Hour
	// ProofTTL bounds the one-time proof issued by a successful OTP verify.
	ProofTTL = 10 * time.Minute

	proofPurpose = "password_reset"
)

// JWTClaims is the session payload: subject id, display name, role.
type JWTClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// proofClaims is the short-lived password-reset proof minted by VerifyOTP.
// Purpose keeps it from being accepted as a session token and vice versa.
type proofClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// KeyFromEnv reads the JWT signing key. Called once at wiring time so the
// key is an injected dependency, not a package global.
func KeyFromEnv() ([]byte, error) {
	key := os.Getenv("JWT_KEY")
	if key == "" {
		return nil, errors.New("JWT_KEY not set")
	}
	return []byte(key), nil
}

func GenerateJWT(userID, name, role string, key []byte, duration time.Duration) (string, error) {
	claims := &JWTClaims{
		Name: name,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateJWT checks signature and expiry and returns the typed claims.
// The payload is never interpreted when either check fails.
func ValidateJWT(tokenString string, key []byte) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// generateResetProof mints the one-time token returned by VerifyOTP. The jti
// is persisted on the user record so the proof cannot be replayed.
func generateResetProof(email string, key []byte, now time.Time) (token, jti string, err error) {
	jti = uuid.NewString()
	claims := &proofClaims{
		Purpose: proofPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(ProofTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	return token, jti, err
}

// validateResetProof returns the jti of a valid, unexpired proof token bound
// to email. Expiry is judged against the caller's clock.
func validateResetProof(tokenString, email string, key []byte, now func() time.Time) (string, error) {
	claims := &proofClaims{}
	parser := jwt.NewParser(jwt.WithTimeFunc(now))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid proof token")
	}
	if claims.Purpose != proofPurpose || claims.Subject != email {
		return "", errors.New("invalid proof token")
	}
	return claims.ID, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
