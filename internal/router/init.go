package router

import (
	"task-manager-api/internal/application"
	"task-manager-api/internal/container"
	pginfra "task-manager-api/internal/infrastructure/postgres"
	handlers "task-manager-api/internal/interface/http"
	"task-manager-api/internal/router/modules"
)

// InitModules builds the repositories, services and handlers and registers
// every feature module with the router registry. Called once at startup.
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	taskRepo := pginfra.NewTaskRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, container.GetLogger())
	taskSvc := application.NewTaskService(taskRepo, userRepo, container.GetLogger())

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, container.GetLogger())))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, container.GetLogger())))
	r.Add(modules.NewHealthModule())
}
