package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the credential record. PasswordHash is empty for federated
// identities. ResetCode is meaningful only while ResetCodeExpiry is in the
// future; both are cleared when the code is consumed. ResetProofID is the jti
// of the outstanding password-reset proof token, cleared once the password
// is changed.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	PasswordHash      string             `bson:"password_hash,omitempty" json:"-"`
	Role              string             `bson:"role" json:"role"`
	ResetCode         string             `bson:"reset_code,omitempty" json:"-"`
	ResetCodeExpiry   *time.Time         `bson:"reset_code_expiry,omitempty" json:"-"`
	ResetCodeIssuedAt *time.Time         `bson:"reset_code_issued_at,omitempty" json:"-"`
	ResetProofID      string             `bson:"reset_proof_id,omitempty" json:"-"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	ProofToken      string `json:"proof_token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
