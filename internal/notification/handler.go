package notification

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"CampusHire/internal/apperr"
	"CampusHire/internal/auth"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func callerID(c echo.Context) (primitive.ObjectID, bool) {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	notifications, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *Handler) MarkRead(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid notification id"})
	}
	if err := h.service.MarkRead(c.Request().Context(), id, userID); err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

func (h *Handler) Delete(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid notification id"})
	}
	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification deleted"})
}
