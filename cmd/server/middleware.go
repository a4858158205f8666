package main

import (
	"time"

	"codeberg.org/resumatch/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// builds the CORS middleware for browser clients
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// builds a per-client rate limit for the API group. This protects the
// remote embedding endpoint budget as much as the server itself.
func RateLimitMiddleware(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		logger.Fatal("invalid rate limit format", "format", formatted, "error", err)
	}

	return mgin.NewMiddleware(limiter.New(memorystore.NewStore(), rate))
}
