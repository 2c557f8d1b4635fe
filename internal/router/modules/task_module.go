package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-manager-api/internal/container"
	handlers "task-manager-api/internal/interface/http"
	"task-manager-api/internal/interface/middleware"
)

// TaskModule wires the task HTTP handlers into routes, including the
// tasks-by-user listing that lives under the /users prefix.

type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP()) // 60 req/min per IP per route

	rg.POST("/tasks/", writeLimiter, m.Handler.Create)
	rg.GET("/tasks/:task_id", m.Handler.Get)
	rg.PUT("/tasks/:task_id", writeLimiter, m.Handler.Update)
	rg.DELETE("/tasks/:task_id", writeLimiter, m.Handler.Delete)

	rg.GET("/users/:user_id/tasks", m.Handler.ListForUser)
}
