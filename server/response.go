package server

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/wonderwords/errors"
)

// RespondWithError writes the failure envelope for err. AppErrors carry
// their own status; anything else becomes a 500 "Internal server error".
func RespondWithError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}
	c.JSON(apperrors.HTTPStatus(appErr), appErr.ToResponse())
}
