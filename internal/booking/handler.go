package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/api"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/auth"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Reserve godoc
// @Summary      Book a class
// @Description  Reserves a seat in a class for the authenticated user.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ReserveRequest  true  "Booking data"
// @Success      201      {object}  ReserveResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) Reserve(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	if fieldErrors := api.ValidateStruct(req); fieldErrors != nil {
		api.RespondWithValidationErrors(c, fieldErrors)
		return
	}

	resp, err := h.service.Reserve(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrClassStarted):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "cannot book past classes"})
		case errors.Is(err, ErrClassFull), errors.Is(err, ErrAlreadyBooked):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("failed to reserve", "error", err, "user_id", userID, "class_id", req.ClassID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Cancel godoc
// @Summary      Cancel booking
// @Description  Cancels a booking of the authenticated user and frees the seat.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID} [delete]
func (h *Handler) Cancel(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking ID"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrClassStarted):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "cannot cancel booking for past classes"})
		default:
			logger.Error("failed to cancel", "error", err, "user_id", userID, "booking_id", bookingID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking cancelled successfully"})
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Description  Returns the authenticated user's bookings, most recent first.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingWithClass
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list bookings", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
