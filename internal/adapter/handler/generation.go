package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/content-studio-team/content-studio/errors"
	"github.com/content-studio-team/content-studio/internal/adapter/dto/common"
	contentDTO "github.com/content-studio-team/content-studio/internal/adapter/dto/content"
	"github.com/content-studio-team/content-studio/internal/adapter/presenter"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
	contentUC "github.com/content-studio-team/content-studio/internal/usecase/content"
)

// Generation handles content generation HTTP requests
type Generation struct {
	contentService contentUC.Service
	logger         *zap.Logger
}

// NewGeneration creates a new generation handler
func NewGeneration(contentService contentUC.Service, logger *zap.Logger) *Generation {
	return &Generation{
		contentService: contentService,
		logger:         logger,
	}
}

// Generate creates one artifact per requested language for an asset
// POST /v1/programs/:id/assets/:assetId/generate
func (h *Generation) Generate(c echo.Context) error {
	ctx := c.Request().Context()

	programID, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	assetID, err := parseIDParam(c, "assetId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req contentDTO.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err))
	}

	artifacts, err := h.contentService.StartGeneration(ctx, programID, assetID, entities.ContentType(req.ContentType), req.Languages)
	if err != nil {
		// Artifacts persisted before the failure are not rolled back; the
		// error body names the failed language so the client can retry it.
		return HandleError(h.logger, c, mapGenerationError(c, err, artifacts))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToGenerateResponse(artifacts, len(req.Languages)))
}

// Regenerate replaces one artifact with a fresh generation
// POST /v1/programs/:id/assets/:assetId/artifacts/:artifactId/regenerate
func (h *Generation) Regenerate(c echo.Context) error {
	ctx := c.Request().Context()

	programID, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	assetID, err := parseIDParam(c, "assetId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	artifactID, err := parseIDParam(c, "artifactId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	artifact, err := h.contentService.StartRegeneration(ctx, programID, assetID, artifactID)
	if err != nil {
		return HandleError(h.logger, c, mapGenerationError(c, err, nil))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToArtifactResponse(artifact))
}

// ListArtifacts returns the current artifact per key for an asset
// GET /v1/programs/:id/assets/:assetId/artifacts
func (h *Generation) ListArtifacts(c echo.Context) error {
	ctx := c.Request().Context()

	programID, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	assetID, err := parseIDParam(c, "assetId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req contentDTO.ListArtifactsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err))
	}

	artifacts, err := h.contentService.ListLatest(ctx, programID, assetID, req.Language, entities.ContentType(req.ContentType))
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, common.ListResponse{
		Data: presenter.ToArtifactListResponse(artifacts),
	})
}
