package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/label-system/internal/core/catalog"
	"github.com/99minutos/label-system/internal/core/ports"
)

// CourierHandler exposes the courier catalog.
type CourierHandler struct {
	catalog *catalog.Catalog
	labels  ports.LabelService
}

func NewCourierHandler(cat *catalog.Catalog, labels ports.LabelService) *CourierHandler {
	return &CourierHandler{catalog: cat, labels: labels}
}

// List handles GET /v1/couriers.
//
// @Summary      List couriers and their services
// @Tags         couriers
// @Produce      json
// @Success      200  {object}  courierListResponse
// @Router       /v1/couriers [get]
func (h *CourierHandler) List(c echo.Context) error {
	all := h.catalog.All()
	resp := courierListResponse{Couriers: make([]courierResponse, 0, len(all))}
	for _, p := range all {
		resp.Couriers = append(resp.Couriers, toCourierResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/couriers/:key.
//
// @Summary      Get one courier
// @Tags         couriers
// @Produce      json
// @Param        key  path      string  true  "Courier key (e.g. royal-mail)"
// @Success      200  {object}  courierResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/couriers/{key} [get]
func (h *CourierHandler) Get(c echo.Context) error {
	p, err := h.catalog.Lookup(c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourierResponse(p))
}

// IssueTracking handles POST /v1/couriers/:key/tracking-numbers.
//
// @Summary      Issue a synthetic tracking number
// @Tags         couriers
// @Produce      json
// @Param        key  path      string  true  "Courier key"
// @Success      201  {object}  trackingResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/couriers/{key}/tracking-numbers [post]
func (h *CourierHandler) IssueTracking(c echo.Context) error {
	key := c.Param("key")
	tracking, err := h.labels.TrackingNumber(c.Request().Context(), key)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, trackingResponse{Courier: key, Tracking: tracking})
}
