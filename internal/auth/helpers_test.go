package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Parallel()

	key := []byte("super-secret")
	tok, err := GenerateJWT("user-1", "Asha", RoleAdmin, key, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := ValidateJWT(tok, key)
	if err != nil {
		t.Fatalf("ValidateJWT error: %v", err)
	}
	if claims.Subject != "user-1" || claims.Name != "Asha" || claims.Role != RoleAdmin {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti on the session token")
	}
}

func TestValidateJWT_Expired(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	tok, err := GenerateJWT("u1", "n", RoleStudent, key, -time.Second)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, err := ValidateJWT(tok, key); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestValidateJWT_WrongKey(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u2", "n", RoleStudent, []byte("right"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, err := ValidateJWT(tok, []byte("wrong")); err == nil {
		t.Fatal("expected error for invalid signature")
	}
}

func TestValidateJWT_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ValidateJWT("not.a.jwt", []byte("k")); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestResetProof_NotValidAsSession(t *testing.T) {
	t.Parallel()

	key := []byte("k")
	proof, _, err := generateResetProof("a@x.com", key, time.Now())
	if err != nil {
		t.Fatalf("generateResetProof error: %v", err)
	}
	// A proof token parses as a session JWT but must never carry a role.
	claims, err := ValidateJWT(proof, key)
	if err == nil && claims.Role != "" {
		t.Fatalf("proof token unexpectedly carries a role: %q", claims.Role)
	}
}

func TestResetProof_BoundToEmail(t *testing.T) {
	t.Parallel()

	key := []byte("k")
	proof, jti, err := generateResetProof("a@x.com", key, time.Now())
	if err != nil {
		t.Fatalf("generateResetProof error: %v", err)
	}

	got, err := validateResetProof(proof, "a@x.com", key, time.Now)
	if err != nil {
		t.Fatalf("validateResetProof error: %v", err)
	}
	if got != jti {
		t.Fatalf("jti mismatch: got %q want %q", got, jti)
	}

	if _, err := validateResetProof(proof, "b@x.com", key, time.Now); err == nil {
		t.Fatal("expected error for proof bound to a different email")
	}
}

func TestResetProof_Expired(t *testing.T) {
	t.Parallel()

	key := []byte("k")
	proof, _, err := generateResetProof("a@x.com", key, time.Now().Add(-ProofTTL-time.Minute))
	if err != nil {
		t.Fatalf("generateResetProof error: %v", err)
	}
	if _, err := validateResetProof(proof, "a@x.com", key, time.Now); err == nil {
		t.Fatal("expected error for expired proof")
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CheckPasswordHash("hunter2", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("hunter3", hash) {
		t.Fatal("wrong password accepted")
	}
}
