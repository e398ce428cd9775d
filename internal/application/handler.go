package application

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

// Apply lets a student apply to a job.
func (h *Handler) Apply(c echo.Context) error {
	studentID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	app, err := h.service.Apply(c.Request().Context(), studentID, req.JobID)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusCreated, app)
}

// Mine lists the calling student's applications.
func (h *Handler) Mine(c echo.Context) error {
	studentID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
	}
	apps, err := h.service.ListForStudent(c.Request().Context(), studentID)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, apps)
}

// ListForJob is admin-only: all applications for a job.
func (h *Handler) ListForJob(c echo.Context) error {
	jobID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	apps, err := h.service.ListForJob(c.Request().Context(), jobID)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, apps)
}

// UpdateStatus is admin-only: shortlist/reject/hire an applicant.
func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid application id"})
	}
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	app, err := h.service.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, app)
}
