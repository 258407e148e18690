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

var (
	errInvalidEventID     = errors.New("invalid event ID")
	errInvalidBookingRole = errors.New("role must be PARTICIPANT or VOLUNTEER")
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEventDetail(ctx context.Context, id uint, userRole string) (domain.Event, error)
}

type AttendeeService interface {
	ListAttendees(ctx context.Context, eventID uint, roleAtBooking string) ([]domain.Attendee, error)
}

type EventHandler struct {
	svc         EventService
	attendeeSvc AttendeeService
	uSvc        UserService
}

func NewEventHandler(svc EventService, attendeeSvc AttendeeService, uSvc UserService) *EventHandler {
	return &EventHandler{
		svc:         svc,
		attendeeSvc: attendeeSvc,
		uSvc:        uSvc,
	}
}

// HandleListEvents godoc
// @Summary      List events
// @Description  Event summaries ordered by start time ascending.
// @Tags         events
// @Produce      json
// @Success      200    {array}   domain.Event
// @Failure      500    {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Creates an event with its registration questions. Staff and admins only.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest true "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !domain.IsStaff(user.Role) {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not staff", user.ID)))

		return
	}

	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	questions := make([]domain.Question, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = domain.Question{
			Text:       q.Text,
			Type:       q.Type,
			Options:    q.Options,
			TargetRole: q.TargetRole,
		}
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Name:      req.Name,
		Start:     req.Start,
		End:       req.End,
		Location:  req.Location,
		MinTier:   req.MinTier,
		Questions: questions,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleGetEvent godoc
// @Summary      Get event detail
// @Description  Event with the questions targeting userRole (default PARTICIPANT) and the user IDs already booked.
// @Tags         events
// @Produce      json
// @Param        eventID   path      int    true  "event ID"
// @Param        userRole  query     string false "PARTICIPANT or VOLUNTEER"
// @Success      200       {object}  domain.Event
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, err := parseEventID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	userRole := strings.ToUpper(ctx.DefaultQuery("userRole", domain.RoleParticipant))
	if !domain.ValidBookingRole(userRole) {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidBookingRole))

		return
	}

	event, err := h.svc.GetEventDetail(ctx.Request.Context(), eventID, userRole)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEventDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleListAttendees godoc
// @Summary      List event attendees
// @Description  Bookings for the event projected onto the staff attendee view, oldest first, optionally filtered by the capacity booked under.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int    true  "event ID"
// @Param        role     query     string false "PARTICIPANT or VOLUNTEER"
// @Success      200      {array}   domain.Attendee
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/attendees [get]
func (h *EventHandler) HandleListAttendees(ctx *gin.Context) {
	eventID, err := parseEventID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	role := strings.ToUpper(ctx.Query("role"))
	if role != "" && !domain.ValidBookingRole(role) {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidBookingRole))

		return
	}

	attendees, err := h.attendeeSvc.ListAttendees(ctx.Request.Context(), eventID, role)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleListAttendees -> h.attendeeSvc.ListAttendees -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, attendees)
}

func parseEventID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		return 0, errInvalidEventID
	}

	return uint(id), nil
}
