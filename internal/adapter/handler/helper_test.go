package handler

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/content-studio-team/content-studio/errors"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
	"github.com/content-studio-team/content-studio/internal/usecase/content"
	usecaseerrors "github.com/content-studio-team/content-studio/internal/usecase/errors"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleErrorRendersAppErrorDetails(t *testing.T) {
	c, rec := newTestContext(t)

	if err := HandleError(nil, c, errors.ErrUserAlreadyExists("user@test.local")); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var body struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Code != int(errors.ErrorCode_USER_ALREADY_EXISTS) {
		t.Fatalf("unexpected code: %d", body.Code)
	}
	if body.Details["email"] != "user@test.local" {
		t.Fatalf("details must carry the email, got %+v", body.Details)
	}
}

func TestHandleErrorWrapsUnknownErrors(t *testing.T) {
	c, rec := newTestContext(t)

	if err := HandleError(nil, c, fmt.Errorf("something broke")); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestMapGenerationErrorPartialBatch(t *testing.T) {
	c, _ := newTestContext(t)

	persisted := []entities.Artifact{
		{Language: "en"},
		{Language: "fr"},
	}
	batchErr := &content.LanguageError{Language: "es", Err: fmt.Errorf("model is down")}

	mapped := mapGenerationError(c, batchErr, persisted)

	var appErr errors.AppError
	if !stdErrors.As(mapped, &appErr) {
		t.Fatalf("expected AppError, got %T", mapped)
	}
	if appErr.Code != errors.ErrorCode_GENERATION_PARTIAL {
		t.Fatalf("expected partial code, got %v", appErr.Code)
	}
	if appErr.Details["failed_language"] != "es" {
		t.Fatalf("expected failed language in details, got %+v", appErr.Details)
	}
	if appErr.Details["succeeded_languages"] != "en,fr" {
		t.Fatalf("expected succeeded languages in details, got %+v", appErr.Details)
	}
}

func TestMapGenerationErrorTotalFailure(t *testing.T) {
	c, _ := newTestContext(t)

	unparseable := &content.LanguageError{
		Language: "en",
		Err:      fmt.Errorf("%w: bad json", usecaseerrors.ErrUnparseableOutput),
	}
	var appErr errors.AppError
	if !stdErrors.As(mapGenerationError(c, unparseable, nil), &appErr) {
		t.Fatalf("expected AppError")
	}
	if appErr.Code != errors.ErrorCode_GENERATION_UNPARSEABLE {
		t.Fatalf("expected unparseable code, got %v", appErr.Code)
	}

	down := &content.LanguageError{Language: "en", Err: fmt.Errorf("model is down")}
	if !stdErrors.As(mapGenerationError(c, down, nil), &appErr) {
		t.Fatalf("expected AppError")
	}
	if appErr.Code != errors.ErrorCode_GENERATION_FAILED {
		t.Fatalf("expected generation failed code, got %v", appErr.Code)
	}
}

func TestMapDomainErrorNotFound(t *testing.T) {
	c, _ := newTestContext(t)
	c.SetParamNames("id")
	c.SetParamValues("abc-123")

	var appErr errors.AppError
	if !stdErrors.As(mapDomainError(c, entities.ErrProgramNotFound), &appErr) {
		t.Fatalf("expected AppError")
	}
	if appErr.Code != errors.ErrorCode_PROGRAM_NOT_FOUND {
		t.Fatalf("expected program not found code, got %v", appErr.Code)
	}
	if appErr.Details["program_id"] != "abc-123" {
		t.Fatalf("expected program id in details, got %+v", appErr.Details)
	}
}
