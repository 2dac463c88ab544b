package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hms-backend/controllers"
	"hms-backend/middleware"
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

func SetupRouter(
	cc *controllers.CatalogController,
	ctc *controllers.CustomerController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		locations := api.Group("/locations")
		{
			locations.GET("", cc.ListLocations)
			locations.POST("", cc.CreateLocation)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", cc.ListHotels)
			hotels.POST("", cc.CreateHotel)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/search", cc.SearchRooms)
			rooms.POST("", cc.CreateRoom)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", ctc.SearchCustomers)
			customers.POST("", ctc.CreateCustomer)

			// export must be registered before /:id routes
			customers.GET("/export", ctc.ExportCustomers)
			customers.GET("/:id/bookings", bc.ListCustomerBookings)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.POST("/:id/complete", bc.CompleteBooking)
		}
	}

	return r
}
