package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/linkwork-app/linkwork_be/internal/config"
	"github.com/linkwork-app/linkwork_be/internal/handlers"
	"github.com/linkwork-app/linkwork_be/internal/middleware"
	"github.com/linkwork-app/linkwork_be/internal/realtime"
	"github.com/linkwork-app/linkwork_be/internal/services/auth"
	"github.com/linkwork-app/linkwork_be/internal/services/data"
	"github.com/linkwork-app/linkwork_be/internal/store"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	st, err := store.Open(cfg.DataFile, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataFile).Msg("open data store")
	}
	sessions := store.NewSessionStore(cfg.SessionFile, log)

	authSvc := auth.NewAuthService(st, sessions, log)
	dataSvc := data.NewDataService(st, log)

	hub := realtime.NewHub(log)
	go hub.Run()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://127.0.0.1:3000, http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	authH := &handlers.AuthHandler{
		Auth:      authSvc,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	projectH := handlers.NewProjectHandler(dataSvc)
	proposalH := handlers.NewProposalHandler(dataSvc)
	gigH := handlers.NewGigHandler(dataSvc)
	locationH := handlers.NewLocationHandler()
	chatH := handlers.NewChatHandler(hub, cfg.JWTSecret, log)

	api := app.Group("/api")

	// public
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/gigs", gigH.List)
	api.Get("/locations", locationH.List)
	api.Get("/projects", projectH.List)
	api.Get("/projects/:id", projectH.GetDetail)

	// protected (JWT cookie)
	protected := api.Group("/",
		middleware.JWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/me", authH.Me)

	// client only
	protected.Post("/projects",
		middleware.RequireRoles("client"),
		projectH.Create,
	)
	protected.Get("/client/projects",
		middleware.RequireRoles("client"),
		projectH.ListMine,
	)
	protected.Get("/projects/:id/proposals",
		middleware.RequireRoles("client"),
		proposalH.ListForProject,
	)
	protected.Patch("/proposals/:id/status",
		middleware.RequireRoles("client"),
		proposalH.UpdateStatus,
	)

	// freelancer only
	protected.Post("/proposals",
		middleware.RequireRoles("freelancer"),
		proposalH.Submit,
	)
	protected.Get("/freelancer/proposals",
		middleware.RequireRoles("freelancer"),
		proposalH.ListMine,
	)

	// WebSocket endpoint (no JWT middleware, auth via query param)
	app.Get("/ws/chat", websocket.New(chatH.WebSocketHandler))

	log.Fatal().Err(app.Listen(":" + cfg.AppPort)).Msg("server stopped")
}
