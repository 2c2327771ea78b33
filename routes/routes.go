package routes

import (
	"github.com/smartZeee/worker-side/configs"
	"github.com/smartZeee/worker-side/controllers"
	"github.com/smartZeee/worker-side/entity"
	"github.com/smartZeee/worker-side/middlewares"
	"github.com/smartZeee/worker-side/repository"
	"github.com/smartZeee/worker-side/services"
	"github.com/smartZeee/worker-side/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.LiveHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	workerRepo := repository.NewWorkerRepository(db)
	credRepo := repository.NewCredentialRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(workerRepo, credRepo, cfg.AuthDomain)
	workerSvc := services.NewWorkerService(workerRepo, credRepo, cfg.AuthDomain, hub)
	menuSvc := services.NewMenuService(menuRepo, hub)
	orderSvc := services.NewOrderService(orderRepo, menuRepo, hub)
	dashSvc := services.NewDashboardService(orderRepo, menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.JWTSecret, cfg.JWTTTL)
	workerCtrl := controllers.NewWorkerController(workerSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	dashCtrl := controllers.NewDashboardController(dashSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/session", authCtrl.Session)
	}

	// ทุก role ที่ login แล้ว (kitchen/manager/delivery/admin)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/menu", menuCtrl.List)
		u.GET("/menu/:id", menuCtrl.Get)
		u.GET("/orders/:id", orderCtrl.Detail)

		// การรับออเดอร์เข้าระบบ (event จากต้นทาง)
		u.POST("/orders", orderCtrl.Place)

		// worker portal: เลื่อนสถานะออเดอร์
		u.PATCH("/orders/:id/advance", orderCtrl.Advance)
		u.PATCH("/orders/:id/status", orderCtrl.SetStatus)
	}

	// Kitchen portal
	kitchen := r.Group("/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		kitchen.GET("/orders", orderCtrl.ListForKitchen) // ?mine=1
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/dashboard", dashCtrl.Summary) // ?period=

		admin.GET("/orders", orderCtrl.List) // ?active=1

		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.PATCH("/menu/:id/stock", menuCtrl.SetStock)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.GET("/workers", workerCtrl.List)
		admin.GET("/workers/:id", workerCtrl.Get)
		admin.POST("/workers", workerCtrl.Create)
		admin.PATCH("/workers/:id", workerCtrl.Update)
		admin.PATCH("/workers/:id/active", workerCtrl.SetActive)
		admin.DELETE("/workers/:id", workerCtrl.Delete)
	}

	// Live feed (token ผ่าน query ได้เพราะเป็น WS)
	r.GET("/ws/live", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
