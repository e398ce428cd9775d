package job

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

func (h *Handler) Create(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	postedBy, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	var req UpsertJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	job, err := h.service.Create(c.Request().Context(), req, postedBy)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusCreated, job)
}

func (h *Handler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, jobs)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	job, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, job)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	var req UpsertJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	job, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, job)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Job deleted"})
}
