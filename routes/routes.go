package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitcoach-backend/controllers"
	"fitcoach-backend/middleware"
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

// SetupRouter wires the controllers onto the route table.
func SetupRouter(
	sys *controllers.SystemController,
	cc *controllers.ClientController,
	mc *controllers.MeasurementController,
	sc *controllers.SessionController,
	wc *controllers.WorkoutController,
	nc *controllers.NutritionController,
	pc *controllers.PaymentController,
	coc *controllers.ConsentController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Metrics())

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

	r.GET("/", sys.Root)
	r.GET("/test", sys.Test)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/clients", cc.CreateClient)
	r.GET("/clients", cc.ListClients)

	r.POST("/measurements", mc.AddMeasurement)
	r.GET("/clients/:client_id/measurements", mc.ListByClient)
	r.POST("/relative-strength", mc.RelativeStrength)
	r.GET("/clients/:client_id/progress/relative-strength", mc.Progress)

	r.POST("/sessions", sc.BookSession)
	r.GET("/clients/:client_id/sessions", sc.ListByClient)
	r.POST("/sessions/:id/attendance", sc.UpdateAttendance)

	r.POST("/workouts/log", wc.LogWorkout)
	r.GET("/clients/:client_id/workouts", wc.ListByClient)

	r.POST("/nutrition", nc.AddEntry)
	r.GET("/clients/:client_id/nutrition", nc.ListByClient)

	r.POST("/payments", pc.CreatePayment)
	r.GET("/clients/:client_id/payments", pc.ListByClient)

	r.POST("/consent/templates", coc.CreateTemplate)
	r.POST("/consent/sign", coc.SignConsent)

	return r
}
