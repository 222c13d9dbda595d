package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pointgrid/point-backend/internal/models"
	"github.com/pointgrid/point-backend/internal/services"
)

// PointHandler handles point-related HTTP requests
type PointHandler struct {
	pointService services.PointService
}

// NewPointHandler creates a new PointHandler
func NewPointHandler(pointService services.PointService) *PointHandler {
	return &PointHandler{
		pointService: pointService,
	}
}

// GetPoint handles GET /point/:id
func (h *PointHandler) GetPoint(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		return
	}

	point, err := h.pointService.GetPoint(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, point)
}

// GetHistories handles GET /point/:id/histories
func (h *PointHandler) GetHistories(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		return
	}

	histories, err := h.pointService.GetHistories(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, histories)
}

// Charge handles PATCH /point/:id/charge. The request body is a raw JSON
// integer amount.
func (h *PointHandler) Charge(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		return
	}

	amount, err := bindAmount(c)
	if err != nil {
		return
	}

	point, err := h.pointService.Charge(c.Request.Context(), userID, amount)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, point)
}

// Use handles PATCH /point/:id/use. The request body is a raw JSON
// integer amount.
func (h *PointHandler) Use(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		return
	}

	amount, err := bindAmount(c)
	if err != nil {
		return
	}

	point, err := h.pointService.Use(c.Request.Context(), userID, amount)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, point)
}

// parseUserID parses the :id path parameter. A non-numeric ID fails the
// request with 400 before the service is invoked; positivity is the
// service's job so that the validation order stays in one place.
func parseUserID(c *gin.Context) (int64, error) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_USER_ID",
			Message: "user id must be an integer",
		})
		return 0, err
	}
	return userID, nil
}

// bindAmount binds the raw integer request body of charge/use.
func bindAmount(c *gin.Context) (int64, error) {
	var amount int64
	if err := c.ShouldBindJSON(&amount); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_AMOUNT",
			Message: "request body must be an integer amount",
		})
		return 0, err
	}
	return amount, nil
}

// writeError maps service errors to HTTP responses: the domain errors map
// to 400, anything else to a generic 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidUserID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Code: "INVALID_USER_ID", Message: "user id must be a positive integer"})
	case errors.Is(err, services.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Code: "INVALID_AMOUNT", Message: "amount must be a positive integer"})
	case errors.Is(err, services.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: "not enough points"})
	case errors.Is(err, services.ErrBalanceOverflow):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Code: "BALANCE_OVERFLOW", Message: "charge exceeds the maximum balance"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Code: "INTERNAL_ERROR", Message: "an unexpected error occurred"})
	}
}
