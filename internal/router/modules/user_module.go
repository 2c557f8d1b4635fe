package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-manager-api/internal/container"
	handlers "task-manager-api/internal/interface/http"
	"task-manager-api/internal/interface/middleware"
)

// UserModule wires the user HTTP handlers into routes
// POST /users/ and GET /users/{user_id}

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()) // 30 req/min per IP

	rg.POST("/users/", createLimiter, m.Handler.Create)
	rg.GET("/users/:user_id", m.Handler.Get)
}
