package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobboard/jobboard-api/internal/api/http/handlers"
	"github.com/jobboard/jobboard-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UsersHandler
	Companies  *handlers.CompaniesHandler
	Jobs       *handlers.JobsHandler
	Authorizer *auth.Authorizer
	Metrics    fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	authz := cfg.Authorizer

	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	app.Post("/user-auth", cfg.Auth.LoginUser)
	app.Post("/company-auth", cfg.Auth.LoginCompany)

	users := app.Group("/users")
	users.Post("/", cfg.Users.Create)
	users.Get("/", authz.RequireAuthorization(), cfg.Users.List)
	users.Get("/:username", authz.RequireAuthorization(), cfg.Users.Get)
	users.Patch("/:username", authz.RequireCorrectUser("username"), cfg.Users.Update)
	users.Delete("/:username", authz.RequireCorrectUser("username"), cfg.Users.Delete)
	users.Get("/:username/applications", authz.RequireCorrectUser("username"), cfg.Users.Applications)

	companies := app.Group("/companies")
	companies.Post("/", cfg.Companies.Create)
	companies.Get("/", authz.RequireAuthorization(), cfg.Companies.List)
	companies.Get("/:handle", authz.RequireAuthorization(), cfg.Companies.Get)
	companies.Patch("/:handle", authz.RequireCorrectCompany("handle"), cfg.Companies.Update)
	companies.Delete("/:handle", authz.RequireCorrectCompany("handle"), cfg.Companies.Delete)

	jobs := app.Group("/jobs")
	jobs.Post("/", authz.RequireCompanyAuthorization(), cfg.Jobs.Create)
	jobs.Get("/", authz.RequireAuthorization(), cfg.Jobs.List)
	jobs.Get("/:id", authz.RequireAuthorization(), cfg.Jobs.Get)
	jobs.Patch("/:id", authz.RequireCompanyAuthorization(), cfg.Jobs.Update)
	jobs.Delete("/:id", authz.RequireCompanyAuthorization(), cfg.Jobs.Delete)
	jobs.Post("/:id/applications", authz.RequireUserAuthorization(), cfg.Jobs.Apply)
	jobs.Get("/:id/applications", authz.RequireCompanyAuthorization(), cfg.Jobs.Applications)
	jobs.Delete("/:id/applications", authz.RequireUserAuthorization(), cfg.Jobs.Withdraw)
}
