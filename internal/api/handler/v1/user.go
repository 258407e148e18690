package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/communitydesk/eventdesk/internal/api/handler/v1/request"
	"github.com/communitydesk/eventdesk/internal/api/handler/v1/response"
	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/service"
)

var errInvalidUserRole = errors.New("invalid role")

type UserService interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUser(ctx context.Context, id uint) (domain.User, error)
	ListUsers(ctx context.Context, role string, take int) ([]domain.User, error)
	ListAttendance(ctx context.Context, role string) ([]domain.AttendanceRecord, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List users
// @Description  Lists users, optionally filtered by role (case-insensitive). take defaults to 10, clamped to [1, 100].
// @Tags         users
// @Produce      json
// @Param        role   query     string false "account role filter"
// @Param        take   query     int    false "max users returned"
// @Success      200    {array}   domain.User
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	role := strings.ToUpper(ctx.Query("role"))
	if role != "" && !domain.ValidRole(role) {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidUserRole))

		return
	}

	take, err := strconv.Atoi(ctx.DefaultQuery("take", "10"))
	if err != nil {
		take = 10
	}

	users, err := h.svc.ListUsers(ctx.Request.Context(), role, take)
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleCreateUser godoc
// @Summary      Create a user
// @Description  Registers a user. The password is bcrypt-hashed and never returned.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateUserRequest true "request body"
// @Success      201      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users [post]
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	// Role arrives in whichever case the client used.
	req.Role = strings.ToUpper(req.Role)

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.CreateUser(ctx.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.CreateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleUserAttendance godoc
// @Summary      List users with booking counts
// @Description  Staff report of users (newest first) with the bookings counted against them.
// @Tags         users
// @Produce      json
// @Param        role   query     string false "account role filter"
// @Success      200    {array}   domain.AttendanceRecord
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /users/attendance [get]
func (h *UserHandler) HandleUserAttendance(ctx *gin.Context) {
	role := strings.ToUpper(ctx.Query("role"))
	if role != "" && !domain.ValidRole(role) {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidUserRole))

		return
	}

	records, err := h.svc.ListAttendance(ctx.Request.Context(), role)
	if err != nil {
		err = fmt.Errorf("v1.HandleUserAttendance -> h.svc.ListAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, records)
}
