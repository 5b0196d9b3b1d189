package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/content-studio-team/content-studio/errors"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
	"github.com/content-studio-team/content-studio/internal/usecase/content"
	usecaseerrors "github.com/content-studio-team/content-studio/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	// Non-AppError => internal server error
	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// mapDomainError translates domain and usecase sentinels into AppErrors so
// they carry the right HTTP status. Errors that already are AppErrors pass
// through untouched; anything unrecognized becomes an internal error.
func mapDomainError(c echo.Context, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return err
	}

	switch {
	case stdErrors.Is(err, entities.ErrProgramNotFound):
		return errors.ErrProgramNotFound(c.Param("id"))
	case stdErrors.Is(err, entities.ErrAssetNotFound):
		return errors.ErrAssetNotFound(c.Param("assetId"))
	case stdErrors.Is(err, entities.ErrArtifactNotFound):
		return errors.ErrArtifactNotFound(c.Param("artifactId"))
	case stdErrors.Is(err, entities.ErrUserAlreadyExists):
		return errors.ErrUserAlreadyExists("")
	case stdErrors.Is(err, entities.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, entities.ErrStaleProgram):
		return errors.ErrConflict(err)
	case stdErrors.Is(err, entities.ErrAssetNotGenerable),
		stdErrors.Is(err, entities.ErrInvalidContentType),
		stdErrors.Is(err, entities.ErrInvalidAssetType),
		stdErrors.Is(err, entities.ErrNoLanguages),
		stdErrors.Is(err, entities.ErrEmptySource),
		stdErrors.Is(err, entities.ErrInvalidEmail),
		stdErrors.Is(err, entities.ErrInvalidPassword),
		stdErrors.Is(err, entities.ErrInvalidRequest):
		return errors.ErrValidation(err)
	case stdErrors.Is(err, usecaseerrors.ErrUnparseableOutput),
		stdErrors.Is(err, usecaseerrors.ErrEmptyModelOutput):
		return errors.ErrUnparseableModelOutput(err)
	case stdErrors.Is(err, usecaseerrors.ErrGeneratorUnavailable),
		stdErrors.Is(err, usecaseerrors.ErrModelCallFailed):
		return errors.ErrGenerationFailed(err)
	}
	return errors.ErrInternal(err)
}

// mapGenerationError distinguishes a batch that persisted nothing from one
// that died partway through. Artifacts persisted before the failure stay
// persisted; their languages are reported so the client knows what to retry.
func mapGenerationError(c echo.Context, err error, persisted []entities.Artifact) error {
	var langErr *content.LanguageError
	if stdErrors.As(err, &langErr) {
		if len(persisted) > 0 {
			succeeded := make([]string, 0, len(persisted))
			for _, a := range persisted {
				succeeded = append(succeeded, a.Language)
			}
			return errors.ErrGenerationPartial(langErr.Language, succeeded, langErr.Err)
		}
		if stdErrors.Is(langErr.Err, usecaseerrors.ErrUnparseableOutput) ||
			stdErrors.Is(langErr.Err, usecaseerrors.ErrEmptyModelOutput) {
			return errors.ErrUnparseableModelOutput(langErr.Err)
		}
		return errors.ErrGenerationFailed(err)
	}
	return mapDomainError(c, err)
}
