package main

import (
	"room-booking-api/core/logger"
	"room-booking-api/core/server"

	_ "room-booking-api/docs" // Swagger docs
)

// @title Room Booking API
// @version 1.0
// @description Meeting room reservation API with conflict-free booking, availability checks, and advisory calendar hints.

// @contact.name API Support
// @contact.email support@roombooking.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
