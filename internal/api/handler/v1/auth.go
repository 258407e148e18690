package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/communitydesk/eventdesk/internal/api/handler/v1/request"
	"github.com/communitydesk/eventdesk/internal/api/handler/v1/response"
	"github.com/communitydesk/eventdesk/internal/api/middleware"
	"github.com/communitydesk/eventdesk/internal/config"
	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/pkg/jwthelper"
	"github.com/communitydesk/eventdesk/internal/service"
)

var (
	errInvalidCredentials = errors.New("invalid email or password")
	errInvalidAccessCode  = errors.New("invalid staff access code")
	errNotStaff           = errors.New("you are not authorized as staff")
	errNotParticipant     = errors.New("you are not authorized as a participant or volunteer")
)

type AuthService interface {
	Login(ctx context.Context, email, password, roleClass string) (domain.User, error)
}

type SessionStore interface {
	StoreSession(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error
	DeleteSession(ctx context.Context, tokenID string) error
}

type AuthHandler struct {
	conf     *config.APIConfig
	svc      AuthService
	sessions SessionStore
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, sessions SessionStore) *AuthHandler {
	return &AuthHandler{
		conf:     conf,
		svc:      svc,
		sessions: sessions,
	}
}

// HandleLogin godoc
// @Summary      Login a user
// @Description  Authenticates by email/password. Staff logins additionally need the shared access code.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if req.Role == service.RoleClassStaff && req.AccessCode != h.conf.GetStaffAccessCode() {
		response.RenderErr(ctx, response.ErrWrongCredentials(errInvalidAccessCode))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrWrongPassword):
			response.RenderErr(ctx, response.ErrWrongCredentials(errInvalidCredentials))
		case errors.Is(err, service.ErrRoleMismatch):
			if req.Role == service.RoleClassStaff {
				response.RenderErr(ctx, response.ErrPermissionDenied(errNotStaff))
			} else {
				response.RenderErr(ctx, response.ErrPermissionDenied(errNotParticipant))
			}
		default:
			err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	token, claims, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if err = h.sessions.StoreSession(ctx.Request.Context(), claims.ID, user.ID, jwthelper.TokenTTL); err != nil {
		err = fmt.Errorf("v1.HandleLogin -> h.sessions.StoreSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Success: true,
		Token:   token,
		User: response.LoginUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
		UserRole: user.Role,
	})
}

// HandleLogout godoc
// @Summary      Logout the current user
// @Description  Deletes the server-side session for the presented token.
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.Message
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/logout [post]
// @Security BearerAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	tokenID := ctx.GetString(middleware.ContextKeyTokenID)
	if tokenID == "" {
		response.RenderErr(ctx, response.ErrTokenMissing())

		return
	}

	if err := h.sessions.DeleteSession(ctx.Request.Context(), tokenID); err != nil {
		err = fmt.Errorf("v1.HandleLogout -> h.sessions.DeleteSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Logged out successfully"})
}
