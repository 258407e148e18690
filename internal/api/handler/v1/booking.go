package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/communitydesk/eventdesk/internal/api/handler/v1/request"
	"github.com/communitydesk/eventdesk/internal/api/handler/v1/response"
	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/service"
)

var (
	errMissingUserID       = errors.New("missing userId parameter")
	errMissingCancelParams = errors.New("missing userId or eventId parameter")
	errAlreadyBooked       = errors.New("you have already booked this event")
)

type BookingService interface {
	CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	ListBookings(ctx context.Context, userID uint) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, userID, eventID uint) error
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{
		svc: svc,
	}
}

// HandleListBookings godoc
// @Summary      List a user's bookings
// @Description  Bookings newest-first with nested event and answers.
// @Tags         bookings
// @Produce      json
// @Param        userId  query     int true "user ID"
// @Success      200     {array}   domain.Booking
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /bookings [get]
func (h *BookingHandler) HandleListBookings(ctx *gin.Context) {
	userID, err := parseIDQuery(ctx, "userId", errMissingUserID)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	bookings, err := h.svc.ListBookings(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListBookings -> h.svc.ListBookings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleCreateBooking godoc
// @Summary      Book an event
// @Description  Creates a booking with its answers in one write. A second booking for the same user and event is rejected.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateBookingRequest true "request body"
// @Success      201      {object}  response.BookingCreated
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /bookings [post]
func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	var req request.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	answers := make([]domain.Answer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = domain.Answer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
		}
	}

	booking, err := h.svc.CreateBooking(ctx.Request.Context(), domain.Booking{
		UserID:        req.UserID,
		EventID:       req.EventID,
		RoleAtBooking: req.RoleAtBooking,
		Answers:       answers,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrBookingExists):
			response.RenderErr(ctx, response.ErrConflict(errAlreadyBooked))
		default:
			err = fmt.Errorf("v1.HandleCreateBooking -> h.svc.CreateBooking -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.BookingCreated{
		Message: "Booking created successfully",
		Booking: booking,
	})
}

// HandleCancelBooking godoc
// @Summary      Cancel a booking
// @Description  Deletes the booking for (userId, eventId) and all its answers.
// @Tags         bookings
// @Produce      json
// @Param        userId   query     int true "user ID"
// @Param        eventId  query     int true "event ID"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /bookings [delete]
func (h *BookingHandler) HandleCancelBooking(ctx *gin.Context) {
	userID, err := parseIDQuery(ctx, "userId", errMissingCancelParams)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	eventID, err := parseIDQuery(ctx, "eventId", errMissingCancelParams)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.CancelBooking(ctx.Request.Context(), userID, eventID); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("booking", "userID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleCancelBooking -> h.svc.CancelBooking -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Booking cancelled successfully"})
}

func parseIDQuery(ctx *gin.Context, name string, missingErr error) (uint, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, missingErr
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %v parameter", name)
	}

	return uint(id), nil
}
