package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to the Fitness Studio Booking API"`
	Version string `json:"version" example:"1.0"`
}
