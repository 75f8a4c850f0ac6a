package api

import (
	"errors"

	"f1-monk/docs"
	"f1-monk/internal/api/handlers"
	"f1-monk/pkg/auth"
	"f1-monk/pkg/config"
	"f1-monk/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Chat          *handlers.ChatHandler
	Profile       *handlers.ProfileHandler
	Notifications *handlers.NotificationHandler
	Knowledge     *handlers.KnowledgeHandler
}

func SetupRouter(h Handlers, serverCfg config.ServerConfig, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger docs register themselves in docs.init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	chat := protected.Group("/chat")
	chat.Post("", h.Chat.SendMessage)
	chat.Get("/messages", h.Chat.GetMessages)

	protected.Post("/session/signout", h.Chat.SignOut)

	protected.Get("/profile", h.Profile.GetProfile)
	protected.Put("/profile", h.Profile.UpdateProfile)
	protected.Get("/deadlines", h.Profile.GetDeadlines)

	notifications := protected.Group("/notifications")
	notifications.Get("", h.Notifications.ListNotifications)
	notifications.Post("/:id/read", h.Notifications.MarkRead)
	notifications.Delete("", h.Notifications.ClearNotifications)

	knowledge := protected.Group("/knowledge")
	knowledge.Get("/categories", h.Knowledge.ListCategories)
	knowledge.Get("/categories/:category", h.Knowledge.GetCategory)

	protected.Get("/analytics/top", h.Knowledge.TopQuestions)

	return app
}
