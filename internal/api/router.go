package api

import (
	"spa-concierge/docs"
	"spa-concierge/internal/api/handlers"
	"spa-concierge/pkg/auth"
	"spa-concierge/pkg/middleware"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// SetupRouter wires the HTTP surface. authHandler and editorialHandler are
// nil in engine-only mode (no database configured); the public knowledge
// routes work either way.
func SetupRouter(
	knowledgeHandler *handlers.KnowledgeHandler,
	authHandler *handlers.AuthHandler,
	editorialHandler *handlers.EditorialHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
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

	prometheus := fiberprometheus.New("spa_concierge")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger - importing docs registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public retrieval surface used by the chat widget
	api := app.Group("/api/v1")
	knowledge := api.Group("/knowledge")
	knowledge.Post("/query", knowledgeHandler.Query)
	knowledge.Post("/escalation", knowledgeHandler.Escalation)
	knowledge.Get("/library", knowledgeHandler.Library)

	if authHandler == nil || editorialHandler == nil {
		appLogger.Info("Editorial routes disabled, running engine-only")
		return app
	}

	// Editor auth (public)
	editorAuth := app.Group("/editor/auth")
	editorAuth.Post("/register", authHandler.Register)
	editorAuth.Post("/login", authHandler.Login)
	editorAuth.Post("/refresh", authHandler.RefreshToken)

	// Protected editorial routes
	editorial := api.Group("/editorial", middleware.AuthMiddleware(jwtManager, appLogger))
	editorial.Get("/entries", editorialHandler.ListEntries)
	editorial.Put("/entries/:id", editorialHandler.UpsertEntry)
	editorial.Delete("/entries/:id", editorialHandler.DeleteEntry)
	editorial.Post("/publish", editorialHandler.Publish)

	return app
}
