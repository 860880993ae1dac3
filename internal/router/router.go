// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"esporteagenda/internal/cache"
	"esporteagenda/internal/database"
	"esporteagenda/internal/email"
	"esporteagenda/internal/handler"
	"esporteagenda/internal/handler/auth"
	"esporteagenda/internal/handler/bookings"
	"esporteagenda/internal/handler/courts"
	"esporteagenda/internal/handler/profile"
	"esporteagenda/internal/middleware"
	"esporteagenda/internal/upload"
	"esporteagenda/internal/worker"
)

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, mailer email.Sender, files *upload.Store, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth)

	// Account management.
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))
	api.POST("/auth/forgot-password", auth.ForgotPasswordHandler(db, mailer, wp))
	api.POST("/auth/reset-password", auth.ResetPasswordHandler(db))

	api.GET("/meu-perfil", profile.GetProfileHandler(db), middleware.RequireAuth)
	api.PUT("/meu-perfil", profile.UpdateProfileHandler(db, files), middleware.RequireAuth)

	// Public browsing and availability.
	api.GET("/quadras", courts.ListCourtsHandler(db, rdb))
	api.GET("/horarios/:quadraId/:data", bookings.DailySlotsHandler(db))
	api.POST("/horarios-multi", bookings.MultiDateSlotsHandler(db), middleware.RequireAuth)

	// Booking, client accounts only.
	api.POST("/reservas", bookings.CreateReservationsHandler(db), middleware.RequireClient)

	// Court management, owner accounts only.
	api.POST("/quadras", courts.CreateCourtHandler(db, rdb, files), middleware.RequireOwner)
	api.GET("/minhas-quadras", courts.MyCourtsHandler(db), middleware.RequireOwner)
	api.GET("/dono/reservas", courts.OwnerReservationsHandler(db), middleware.RequireOwner)
	api.GET("/quadra-detalhes/:id", courts.CourtDetailsHandler(db), middleware.RequireOwner)
	api.PUT("/quadra-detalhes/:id", courts.UpdateCourtHandler(db, rdb), middleware.RequireOwner)
	api.DELETE("/quadras/:id", courts.DeleteCourtHandler(db, rdb), middleware.RequireOwner)
}
