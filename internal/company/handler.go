package company

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"CampusHire/internal/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c echo.Context) error {
	var req UpsertCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	company, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusCreated, company)
}

func (h *Handler) List(c echo.Context) error {
	companies, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, companies)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid company id"})
	}
	company, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, company)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid company id"})
	}
	var req UpsertCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	company, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, company)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid company id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(apperr.StatusCode(err), apperr.JSON(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Company deleted"})
}
