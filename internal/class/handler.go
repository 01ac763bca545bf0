package class

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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

// CreateClass godoc
// @Summary      Create fitness class
// @Description  Creates a future-dated class with a fixed capacity.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateClassRequest  true  "Class data"
// @Success      201      {object}  FitnessClass
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	if fieldErrors := api.ValidateStruct(req); fieldErrors != nil {
		api.RespondWithValidationErrors(c, fieldErrors)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "start_time must be RFC3339"})
		return
	}

	fc, err := h.service.Create(c.Request.Context(), req, startTime, userID)
	if err != nil {
		if errors.Is(err, ErrStartTimeNotFuture) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: ErrStartTimeNotFuture.Error()})
			return
		}
		logger.Error("failed to create class", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create class"})
		return
	}

	c.JSON(http.StatusCreated, fc)
}

// ListClasses godoc
// @Summary      List upcoming classes
// @Description  Returns all classes starting after now, soonest first.
// @Tags         classes
// @Produce      json
// @Success      200  {array}   FitnessClass
// @Failure      500  {object}  api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListUpcoming(c.Request.Context())
	if err != nil {
		logger.Error("failed to list classes", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// GetClass godoc
// @Summary      Get class by id
// @Description  Returns a single class, including past classes.
// @Tags         classes
// @Produce      json
// @Param        classID  path      int  true  "Class ID"
// @Success      200      {object}  FitnessClass
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid class ID"})
		return
	}

	fc, err := h.service.GetByID(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: ErrClassNotFound.Error()})
			return
		}
		logger.Error("failed to get class", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch class"})
		return
	}

	c.JSON(http.StatusOK, fc)
}
