package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/takacsd/tms/internal/config"
	"github.com/takacsd/tms/internal/handlers"
	"github.com/takacsd/tms/internal/middleware"
	"github.com/takacsd/tms/internal/repository"
	"github.com/takacsd/tms/internal/seed"
	"github.com/takacsd/tms/internal/services"
	"github.com/takacsd/tms/internal/store"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{})

	gin.SetMode(cfg.GinMode)

	db, err := store.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open store")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	competencyRepo := repository.NewCompetencyRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectTagRepo := repository.NewProjectTagRepository(db)
	taskTypeRepo := repository.NewTaskTypeRepository(db)
	priorityRepo := repository.NewPriorityRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	// Services
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)
	attachmentService := services.NewAttachmentService(attachmentRepo)

	generator := seed.NewGenerator(
		userRepo, competencyRepo, projectRepo, taskRepo,
		projectTagRepo, taskTypeRepo, priorityRepo, statusRepo,
	)

	if cfg.SeedOnStart {
		result, err := generator.Load()
		if err != nil {
			logrus.WithError(err).Fatal("failed to seed store")
		}
		logrus.WithField("users", result.Users).Info("startup seed done")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, taskService)
	taskHandler := handlers.NewTaskHandler(taskService)
	masterDataHandler := handlers.NewMasterDataHandler(
		competencyRepo, projectTagRepo, taskTypeRepo, priorityRepo, statusRepo,
	)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)
	adminHandler := handlers.NewAdminHandler(generator, db)

	r := gin.Default()

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("tms_session", sessionStore))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(userRepo), authHandler.Me)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(userRepo))
		{
			users := protected.Group("/users")
			{
				users.GET("", userHandler.List)
				users.POST("", userHandler.Create)
				users.GET("/:id", userHandler.Get)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
			}

			projects := protected.Group("/projects")
			{
				projects.GET("", projectHandler.List)
				projects.POST("", projectHandler.Create)
				projects.GET("/:id", projectHandler.Get)
				projects.PUT("/:id", projectHandler.Update)
				projects.DELETE("/:id", projectHandler.Delete)
				projects.GET("/:id/tasks", projectHandler.Tasks)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.POST("", taskHandler.Create)
				tasks.GET("/:id", taskHandler.Get)
				tasks.PUT("/:id", taskHandler.Update)
				tasks.PATCH("/:id/progress", taskHandler.UpdateProgress)
				tasks.DELETE("/:id", taskHandler.Delete)
				tasks.GET("/:id/subtasks", taskHandler.Subtasks)
			}

			competencies := protected.Group("/competencies")
			{
				competencies.GET("", masterDataHandler.ListCompetencies)
				competencies.POST("", masterDataHandler.CreateCompetency)
				competencies.PUT("/:id", masterDataHandler.UpdateCompetency)
				competencies.DELETE("/:id", masterDataHandler.DeleteCompetency)
			}

			tags := protected.Group("/project-tags")
			{
				tags.GET("", masterDataHandler.ListProjectTags)
				tags.POST("", masterDataHandler.CreateProjectTag)
				tags.DELETE("/:id", masterDataHandler.DeleteProjectTag)
			}

			taskTypes := protected.Group("/task-types")
			{
				taskTypes.GET("", masterDataHandler.ListTaskTypes)
				taskTypes.POST("", masterDataHandler.CreateTaskType)
				taskTypes.DELETE("/:id", masterDataHandler.DeleteTaskType)
			}

			priorities := protected.Group("/priorities")
			{
				priorities.GET("", masterDataHandler.ListPriorities)
				priorities.POST("", masterDataHandler.CreatePriority)
				priorities.DELETE("/:id", masterDataHandler.DeletePriority)
			}

			statuses := protected.Group("/statuses")
			{
				statuses.GET("", masterDataHandler.ListStatuses)
				statuses.POST("", masterDataHandler.CreateStatus)
				statuses.DELETE("/:id", masterDataHandler.DeleteStatus)
			}

			attachments := protected.Group("/attachments")
			{
				attachments.POST("", attachmentHandler.Upload)
				attachments.GET("/:id", attachmentHandler.Meta)
				attachments.GET("/:id/download", attachmentHandler.Download)
				attachments.DELETE("/:id", attachmentHandler.Delete)
			}

			admin := protected.Group("/admin")
			{
				admin.POST("/seed", adminHandler.Seed)
				admin.POST("/reset", adminHandler.Reset)
			}
		}
	}

	logrus.WithField("addr", cfg.Addr).Info("server starting")
	if err := r.Run(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
