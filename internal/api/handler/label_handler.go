package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/label-system/internal/api/metrics"
	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
	"github.com/99minutos/label-system/internal/infrastructure/queue"
)

const maxBatchSize = 100

// BatchSubmitter runs a batch of label jobs and returns results in job order.
type BatchSubmitter interface {
	Submit(ctx context.Context, jobs []queue.GenerateJob) []queue.GenerateResult
}

// LabelHandler serves label generation and export.
type LabelHandler struct {
	labels  ports.LabelService
	exports ports.ExportService
	batch   BatchSubmitter
}

func NewLabelHandler(labels ports.LabelService, exports ports.ExportService, batch BatchSubmitter) *LabelHandler {
	return &LabelHandler{labels: labels, exports: exports, batch: batch}
}

// Generate handles POST /v1/labels.
//
// @Summary      Build a label document
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        body  body      shipmentFields  true  "Shipment fields"
// @Success      201   {object}  labelResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/labels [post]
func (h *LabelHandler) Generate(c echo.Context) error {
	in, err := bindShipment(c)
	if err != nil {
		return err
	}

	res, err := h.labels.Generate(c.Request().Context(), &domain.Session{}, in)
	if err != nil {
		return err
	}
	countGenerated(res)
	return c.JSON(http.StatusCreated, toLabelResponse(res))
}

// Export handles POST /v1/labels/export: builds the label and returns the file.
//
// @Summary      Build and export a label as PNG or PDF
// @Tags         labels
// @Accept       json
// @Produce      image/png
// @Produce      application/pdf
// @Param        format  query     string          false  "png (default) or pdf"
// @Param        body    body      shipmentFields  true   "Shipment fields"
// @Success      200     {file}    binary
// @Failure      400     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/labels/export [post]
func (h *LabelHandler) Export(c echo.Context) error {
	format, err := exportFormat(c.QueryParam("format"))
	if err != nil {
		return err
	}
	in, err := bindShipment(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	res, err := h.labels.Generate(ctx, &domain.Session{}, in)
	if err != nil {
		return err
	}
	countGenerated(res)

	art, err := h.exports.Export(ctx, res.Document, format)
	if err != nil {
		return err
	}
	for _, f := range art.RenderFailures {
		metrics.LabelsRenderFailuresTotal.WithLabelValues(string(f.Symbology)).Inc()
	}
	metrics.LabelsExportedBytes.WithLabelValues(string(format)).Observe(float64(len(art.Bytes)))

	hdr := c.Response().Header()
	hdr.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", art.Filename))
	hdr.Set("X-Label-Id", res.Document.ID)
	hdr.Set("X-Tracking-Number", res.Document.Tracking)
	if n := len(art.RenderFailures); n > 0 {
		hdr.Set("X-Render-Failures", strconv.Itoa(n))
	}
	return c.Blob(http.StatusOK, art.ContentType, art.Bytes)
}

// Batch handles POST /v1/labels/batch: builds up to 100 labels concurrently.
//
// @Summary      Build a batch of label documents
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        body  body      []shipmentFields  true  "Array of shipment fields"
// @Success      200   {object}  batchResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/labels/batch [post]
func (h *LabelHandler) Batch(c echo.Context) error {
	var reqs []shipmentFields
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}
	if len(reqs) > maxBatchSize {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("batch cannot exceed %d labels", maxBatchSize))
	}

	jobs := make([]queue.GenerateJob, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("label[%d]: %s", i, err.Error()))
		}
		jobs = append(jobs, queue.GenerateJob{Input: toShipmentInput(req)})
	}
	metrics.LabelsBatchSize.Observe(float64(len(jobs)))

	results := h.batch.Submit(c.Request().Context(), jobs)

	resp := batchResponse{Results: make([]batchItemResponse, 0, len(results))}
	for i, r := range results {
		item := batchItemResponse{Index: i}
		if r.Err != nil {
			resp.Failed++
			item.Error = r.Err.Error()
			var ve *domain.ValidationError
			if errors.As(r.Err, &ve) {
				item.Fields = ve.Fields
			}
		} else {
			resp.Succeeded++
			countGenerated(r.Result)
			item.Label = r.Result.Document
		}
		resp.Results = append(resp.Results, item)
	}
	return c.JSON(http.StatusOK, resp)
}

func bindShipment(c echo.Context) (domain.ShipmentInput, error) {
	var req shipmentFields
	if err := c.Bind(&req); err != nil {
		return domain.ShipmentInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ShipmentInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return toShipmentInput(req), nil
}

func exportFormat(raw string) (ports.ExportFormat, error) {
	switch f := ports.ExportFormat(raw); f {
	case "":
		return ports.FormatPNG, nil
	case ports.FormatPNG, ports.FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, raw)
	}
}

func countGenerated(r *ports.LabelResult) {
	metrics.LabelsGeneratedTotal.WithLabelValues(r.Document.Courier, r.Document.Layout).Inc()
}
