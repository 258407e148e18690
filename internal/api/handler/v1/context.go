package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/communitydesk/eventdesk/internal/api/handler/v1/response"
	"github.com/communitydesk/eventdesk/internal/api/middleware"
	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/service"
)

// getUserFromContext resolves the authenticated user placed on the context by
// the JWT middleware.
func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	v, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return domain.User{}, response.ErrTokenMissing()
	}

	userID, ok := v.(uint)
	if !ok {
		return domain.User{}, response.ErrTokenInvalid()
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrTokenInvalid()
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("v1.getUserFromContext -> svc.GetUser -> %w", err))
	}

	return user, nil
}
