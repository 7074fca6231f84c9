package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incident-dashboard/internal/api/dto"
	"github.com/spec-kit/incident-dashboard/internal/ingest"
	"github.com/spec-kit/incident-dashboard/internal/service"
	apperrors "github.com/spec-kit/incident-dashboard/pkg/util"
)

// DatasetHandler accepts CSV exports and replaces the loaded collections.
type DatasetHandler struct {
	datasets *service.DatasetService
}

// NewDatasetHandler constructs handler.
func NewDatasetHandler(datasets *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasets: datasets}
}

// UploadIncidents handles POST /datasets/incidents.
func (h *DatasetHandler) UploadIncidents(c *fiber.Ctx) error {
	body, err := uploadReader(c)
	if err != nil {
		return err
	}

	rows, err := ingest.Incidents(body)
	if err != nil {
		return apperrors.NewValidationError("unreadable incident export: "+err.Error(), nil)
	}

	dataset, diag := h.datasets.LoadIncidents(c.Context(), rows)

	resp := dto.UploadResponse{DatasetID: dataset.ID, Rows: len(rows)}
	resp.Repairs.OpenedRecovered = diag.OpenedRecovered
	resp.Repairs.OpenedDefaulted = diag.OpenedDefaulted
	resp.Repairs.UpdatedFallback = diag.UpdatedFallback
	resp.Repairs.UpdatedClamped = diag.UpdatedClamped
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": resp})
}

// UploadRequests handles POST /datasets/requests.
func (h *DatasetHandler) UploadRequests(c *fiber.Ctx) error {
	body, err := uploadReader(c)
	if err != nil {
		return err
	}

	rows, err := ingest.Requests(body)
	if err != nil {
		return apperrors.NewValidationError("unreadable request export: "+err.Error(), nil)
	}

	dataset := h.datasets.LoadRequests(c.Context(), rows)

	resp := dto.UploadResponse{DatasetID: dataset.ID, Rows: len(rows)}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": resp})
}

// uploadReader accepts either a multipart "file" field or a raw CSV body.
func uploadReader(c *fiber.Ctx) (io.Reader, error) {
	if file, err := c.FormFile("file"); err == nil {
		return openMultipart(file)
	}
	if len(c.Body()) == 0 {
		return nil, apperrors.NewValidationError("empty upload", nil)
	}
	return bytes.NewReader(c.Body()), nil
}

func openMultipart(file *multipart.FileHeader) (io.Reader, error) {
	f, err := file.Open()
	if err != nil {
		return nil, apperrors.NewValidationError("unreadable upload", nil)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.NewValidationError("unreadable upload", nil)
	}
	return bytes.NewReader(content), nil
}
