package server

import (
	"net/http"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @Summary      API welcome
// @Tags         system
// @Produce      json
// @Success      200 {object} api.WelcomeResponse
// @Router       / [get]
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, api.WelcomeResponse{
		Message: "Welcome to the Fitness Studio Booking API",
		Version: "1.0",
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
