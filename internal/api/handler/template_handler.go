package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/label-system/internal/api/metrics"
	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// TemplateHandler serves named templates and label generation from them.
type TemplateHandler struct {
	templates ports.TemplateService
	labels    ports.LabelService
	log       zerolog.Logger
}

func NewTemplateHandler(templates ports.TemplateService, labels ports.LabelService, log zerolog.Logger) *TemplateHandler {
	return &TemplateHandler{templates: templates, labels: labels, log: log}
}

// List handles GET /v1/templates.
//
// @Summary      List template names
// @Tags         templates
// @Produce      json
// @Success      200  {object}  templateListResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	names, err := h.templates.List(c.Request().Context())
	countTemplateOp("list", err)
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(http.StatusOK, templateListResponse{Templates: names})
}

// Get handles GET /v1/templates/:name.
//
// @Summary      Load a template
// @Tags         templates
// @Produce      json
// @Param        name  path      string  true  "Template name"
// @Success      200   {object}  templateResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/templates/{name} [get]
func (h *TemplateHandler) Get(c echo.Context) error {
	t, err := h.templates.Load(c.Request().Context(), pathName(c))
	countTemplateOp("load", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTemplateResponse(t))
}

// Put handles PUT /v1/templates/:name: creates or replaces a template.
//
// @Summary      Save a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string          true  "Template name"
// @Param        body  body      shipmentFields  true  "Fields to store"
// @Success      200   {object}  templateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/templates/{name} [put]
func (h *TemplateHandler) Put(c echo.Context) error {
	in, err := bindShipment(c)
	if err != nil {
		return err
	}

	t, err := h.templates.Save(c.Request().Context(), pathName(c), in)
	countTemplateOp("save", err)
	if err != nil {
		return err
	}
	h.log.Info().Str("template", t.Name).Str("subject", ctxSubject(c)).Msg("template written")
	return c.JSON(http.StatusOK, toTemplateResponse(t))
}

// Delete handles DELETE /v1/templates/:name. Deleting a missing template
// also answers 204.
//
// @Summary      Delete a template
// @Tags         templates
// @Security     BearerAuth
// @Param        name  path  string  true  "Template name"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/templates/{name} [delete]
func (h *TemplateHandler) Delete(c echo.Context) error {
	_, err := h.templates.Delete(c.Request().Context(), pathName(c))
	countTemplateOp("delete", err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GenerateFrom handles POST /v1/templates/:name/labels: applies the template
// to a fresh session and builds a label from it.
//
// @Summary      Build a label from a template
// @Tags         templates
// @Produce      json
// @Param        name  path      string  true  "Template name"
// @Success      201   {object}  labelResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/templates/{name}/labels [post]
func (h *TemplateHandler) GenerateFrom(c echo.Context) error {
	ctx := c.Request().Context()
	sess := &domain.Session{}

	fields, err := h.templates.Apply(ctx, sess, pathName(c))
	countTemplateOp("apply", err)
	if err != nil {
		return err
	}

	res, err := h.labels.Generate(ctx, sess, fields)
	if err != nil {
		return err
	}
	countGenerated(res)
	return c.JSON(http.StatusCreated, toLabelResponse(res))
}

func countTemplateOp(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	metrics.TemplatesOperationsTotal.WithLabelValues(op, result).Inc()
}
