package handlers

import (
	"net/http"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/labstack/echo/v4"
)

// respondDomainError maps a service error onto the right HTTP response.
// Validation messages are written by us and safe to expose; everything else
// stays generic.
func respondDomainError(c echo.Context, err error) error {
	if de, ok := err.(*domain.DomainError); ok {
		switch de.Code {
		case domain.ErrCodeNotFound:
			return apierrors.NotFoundError(c, "")
		case domain.ErrCodeValidation, domain.ErrCodeBadRequest:
			return apierrors.BadRequestError(c, de.Message)
		case domain.ErrCodeUnauthorized:
			return apierrors.UnauthorizedError(c, de.Message)
		case domain.ErrCodeGeneration:
			return apierrors.GenerationError(c, err)
		}
	}
	return apierrors.InternalError(c, err)
}

func ok(c echo.Context) error {
	return c.JSON(http.StatusOK, models.OKResponse{OK: true})
}
