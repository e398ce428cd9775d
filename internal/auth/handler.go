package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"CampusHire/internal/apperr"
)

type AuthHandler struct {
	users *UserService
	otp   *OTPService
}

func NewAuthHandler(users *UserService, otp *OTPService) *AuthHandler {
	return &AuthHandler{users: users, otp: otp}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.users.Register(c.Request().Context(), req); err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	token, err := h.users.Authenticate(c.Request().Context(), cred)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.otp.Issue(c.Request().Context(), req.Email); err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Reset code sent"})
}

func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.otp.Resend(c.Request().Context(), req.Email); err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Reset code resent"})
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	proof, err := h.otp.Verify(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Code verified", "proof_token": proof})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	err := h.otp.ConsumeForPasswordChange(c.Request().Context(), req.Email, req.ProofToken, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password successfully reset"})
}

// Profile returns the authenticated user's record.
func (h *AuthHandler) Profile(c echo.Context) error {
	claims, ok := c.Get("user").(*JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser is admin-only; removal cascades to profile, applications and
// notifications.
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id"})
	}
	if err := h.users.DeleteAccount(c.Request().Context(), id); err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted"})
}
