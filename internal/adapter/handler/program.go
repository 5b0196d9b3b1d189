package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/content-studio-team/content-studio/errors"
	"github.com/content-studio-team/content-studio/internal/adapter/dto/common"
	programDTO "github.com/content-studio-team/content-studio/internal/adapter/dto/program"
	"github.com/content-studio-team/content-studio/internal/adapter/presenter"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
	programUC "github.com/content-studio-team/content-studio/internal/usecase/program"
)

// Program handles program and asset HTTP requests
type Program struct {
	programService programUC.Service
	logger         *zap.Logger
}

// NewProgram creates a new program handler
func NewProgram(programService programUC.Service, logger *zap.Logger) *Program {
	return &Program{
		programService: programService,
		logger:         logger,
	}
}

// currentUserID reads the authenticated user id set by the auth middleware
func currentUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return id, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(name + " must be a valid UUID")
	}
	return id, nil
}

// Create creates a program
// POST /v1/programs
func (h *Program) Create(c echo.Context) error {
	ctx := c.Request().Context()

	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req programDTO.CreateProgramRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err))
	}

	program, err := h.programService.CreateProgram(ctx, ownerID, req.Title, req.Description, req.Tags, req.Languages)
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToProgramResponse(program))
}

// List returns the caller's programs
// GET /v1/programs
func (h *Program) List(c echo.Context) error {
	ctx := c.Request().Context()

	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	programs, err := h.programService.ListPrograms(ctx, ownerID)
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, common.ListResponse{
		Data: presenter.ToProgramListResponse(programs),
	})
}

// Get returns one program with its assets
// GET /v1/programs/:id
func (h *Program) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	program, err := h.programService.GetProgram(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToProgramResponse(program))
}

// Update mutates program metadata
// PUT /v1/programs/:id
func (h *Program) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req programDTO.UpdateProgramRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err))
	}

	program, err := h.programService.UpdateProgram(ctx, id, programUC.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Languages:   req.Languages,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToProgramResponse(program))
}

// Delete removes a program
// DELETE /v1/programs/:id
func (h *Program) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.programService.DeleteProgram(ctx, id); err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// Stats returns aggregated content counts
// GET /v1/programs/:id/stats
func (h *Program) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	stats, err := h.programService.GetStats(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToStatsResponse(stats))
}

// AttachAsset attaches a video or text asset described in the body
// POST /v1/programs/:id/assets
func (h *Program) AttachAsset(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req programDTO.AttachAssetRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err))
	}

	asset, err := h.programService.AttachAsset(ctx, id, entities.AssetType(req.Type), req.Title, req.Content, req.URL)
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToAssetResponse(asset))
}

// UploadAsset stores a document file and attaches it as an asset
// POST /v1/programs/:id/assets/upload  (multipart form: file, title)
func (h *Program) UploadAsset(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file is required"))
	}

	title := c.FormValue("title")
	if title == "" {
		title = fileHeader.Filename
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("open upload", err))
	}
	defer src.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	asset, err := h.programService.UploadAsset(ctx, id, title, fileHeader.Filename, mimeType, src, fileHeader.Size)
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToAssetResponse(asset))
}
