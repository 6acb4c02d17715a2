package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"opsboard/backend/config"
	"opsboard/backend/internal/api/handler"
	"opsboard/backend/internal/api/middleware"
	"opsboard/backend/pkg/jwt"
	"opsboard/backend/pkg/redis"
)

// Setup builds the Gin engine with the full route tree.
//
// Role model: admin manages users and wage rates, manager additionally
// runs purchasing, clerks capture attendance and tasks. Reads are open to
// every authenticated user.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// Unauthenticated; rate limited against credential stuffing.
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.POST("/auth/password", h.Auth.ChangePassword)

			users := authorized.Group("/users", middleware.RoleAuth("admin"))
			{
				users.POST("", h.User.Create)
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.PATCH("/:id", h.User.Update)
			}

			staff := authorized.Group("/staff")
			{
				staff.GET("", h.Staff.List)
				staff.GET("/:id", h.Staff.Get)
				staff.POST("", middleware.RoleAuth("admin", "manager"), h.Staff.Create)
				staff.PATCH("/:id", middleware.RoleAuth("admin", "manager"), h.Staff.Update)
				staff.DELETE("/:id", middleware.RoleAuth("admin"), h.Staff.Delete)
			}

			attendance := authorized.Group("/attendance")
			{
				attendance.GET("/events", h.Attendance.ListEvents)
				attendance.GET("/segments", h.Attendance.ListSegments)
				attendance.GET("/summaries", h.Attendance.ListSummaries)
				attendance.POST("/events", h.Attendance.RecordEvent)
				attendance.DELETE("/events/:id", middleware.RoleAuth("admin", "manager"), h.Attendance.DeleteEvent)
				attendance.POST("/quick-entry", h.Attendance.QuickEntry)
				attendance.POST("/process", middleware.RoleAuth("admin", "manager"), h.Attendance.Process)
			}

			export := authorized.Group("/export", middleware.RoleAuth("admin", "manager"))
			{
				export.GET("/payroll", h.Export.ExportPayroll)
				export.GET("/shifts.ics", h.Export.ExportShiftCalendar)
			}

			suppliers := authorized.Group("/suppliers")
			{
				suppliers.GET("", h.Purchase.ListSuppliers)
				suppliers.GET("/:id", h.Purchase.GetSupplier)
				suppliers.POST("", middleware.RoleAuth("admin", "manager"), h.Purchase.CreateSupplier)
				suppliers.PATCH("/:id", middleware.RoleAuth("admin", "manager"), h.Purchase.UpdateSupplier)
				suppliers.DELETE("/:id", middleware.RoleAuth("admin", "manager"), h.Purchase.DeleteSupplier)
			}

			orders := authorized.Group("/purchase-orders")
			{
				orders.GET("", h.Purchase.ListOrders)
				orders.GET("/:id", h.Purchase.GetOrder)
				orders.POST("", middleware.RoleAuth("admin", "manager"), h.Purchase.CreateOrder)
				orders.PATCH("/:id", middleware.RoleAuth("admin", "manager"), h.Purchase.UpdateOrder)
				orders.DELETE("/:id", middleware.RoleAuth("admin", "manager"), h.Purchase.DeleteOrder)
				orders.POST("/:id/documents", middleware.RoleAuth("admin", "manager"), h.Purchase.AttachDocument)
				orders.DELETE("/documents/:docID", middleware.RoleAuth("admin", "manager"), h.Purchase.DeleteDocument)
			}

			tasks := authorized.Group("/tasks")
			{
				tasks.GET("", h.Task.List)
				tasks.GET("/:id", h.Task.Get)
				tasks.POST("", h.Task.Create)
				tasks.PATCH("/:id", h.Task.Update)
				tasks.DELETE("/:id", middleware.RoleAuth("admin", "manager"), h.Task.Delete)
			}
		}
	}

	return r
}
