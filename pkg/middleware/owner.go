package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	programUsecase "github.com/content-studio-team/content-studio/internal/usecase/program"
)

// RequireProgramOwner middleware: only the owner of the program addressed
// by the :id path parameter may perform the action
func RequireProgramOwner(programService programUsecase.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			programID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"error":   "invalid_program_id",
					"message": "program ID must be a valid UUID",
				})
			}
			userID, ok := c.Get("user_id").(uuid.UUID)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "unauthorized",
					"message": "user not authenticated",
				})
			}
			program, err := programService.GetProgram(c.Request().Context(), programID)
			if err != nil {
				return c.JSON(http.StatusNotFound, map[string]interface{}{
					"error":   "program_not_found",
					"message": "program does not exist",
				})
			}
			if program.OwnerID != userID {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "forbidden",
					"message": "only the program owner may perform this action",
				})
			}
			return next(c)
		}
	}
}
