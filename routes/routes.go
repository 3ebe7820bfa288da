package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hoteleo-server/controllers"
	"hoteleo-server/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the public route table.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	rvc *controllers.ReviewController,
) *gin.Engine {
	r := gin.Default()

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Open routes
	r.POST("/rooms", rc.CreateRoom)
	r.GET("/rooms", rc.GetRooms)
	r.GET("/top-rated-room", rc.GetTopRatedRooms)
	r.GET("/rooms/:id", rc.GetRoomDetails)
	r.PATCH("/book-room/:id", bc.BookRoom)
	r.GET("/latest-reviews", rvc.GetLatestReviews)

	// Verified identity only
	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.PATCH("/review/:roomId", rvc.AddReview)

		// Verified identity plus email-match gate
		gated := authed.Group("/", middleware.RequireEmailMatch())
		{
			gated.GET("/my-bookings", bc.GetMyBookings)
			gated.PATCH("/booking-date-update", bc.UpdateBookingDate)
			gated.DELETE("/booking-cancel", bc.CancelBooking)
		}
	}

	return r
}
