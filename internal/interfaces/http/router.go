package http

import (
	"github.com/gofiber/fiber/v2"

	appattest "github.com/staffboard/attestation-dashboard/internal/application/attestation"
	"github.com/staffboard/attestation-dashboard/internal/application/auth"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	RosterUC  *appattest.RosterUseCase
	DetailUC  *appattest.DetailUseCase
	ReportUC  *appattest.ReportUseCase
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public) — the only reachable operation before login
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.RosterUC, deps.DetailUC, deps.ReportUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.Card)
	employees.Get("/:id/details", employeeHandler.Details)
	employees.Get("/:id/report.pdf", employeeHandler.Report)
}
