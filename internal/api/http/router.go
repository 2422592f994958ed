package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bonos-estetica/voucher-service/internal/api/http/handlers"
	"github.com/bonos-estetica/voucher-service/internal/auth"
	"github.com/bonos-estetica/voucher-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Clients        *handlers.ClientsHandler
	Procedures     *handlers.ProceduresHandler
	Users          *handlers.UsersHandler
	Vouchers       *handlers.VouchersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Login is the only anonymous endpoint;
// everything else requires a bearer token plus the listed roles.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/api/auth/login", cfg.Auth.Login)

	staff := auth.RequireRole(domain.RoleAdmin, domain.RoleRecepcion)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	clients := app.Group("/Clientes", cfg.AuthMiddleware.Handle)
	clients.Get("/", staff, cfg.Clients.List)
	clients.Post("/Cliente", staff, cfg.Clients.Get)
	clients.Post("/CrearCliente", staff, cfg.Clients.Create)
	clients.Post("/ActualizarCliente", staff, cfg.Clients.Update)
	clients.Post("/EliminarCliente", adminOnly, cfg.Clients.Delete)
	clients.Post("/ActivarCliente", adminOnly, cfg.Clients.Activate)

	procedures := app.Group("/Procedimientos", cfg.AuthMiddleware.Handle)
	procedures.Get("/", staff, cfg.Procedures.List)
	procedures.Post("/Procedimiento", staff, cfg.Procedures.Get)
	procedures.Post("/CrearProcedimiento", adminOnly, cfg.Procedures.Create)
	procedures.Post("/ActualizarProcedimiento", adminOnly, cfg.Procedures.Update)
	procedures.Post("/EliminarProcedimiento", adminOnly, cfg.Procedures.Delete)
	procedures.Post("/ActivarProcedimiento", adminOnly, cfg.Procedures.Activate)

	users := app.Group("/Usuarios", cfg.AuthMiddleware.Handle, adminOnly)
	users.Get("/", cfg.Users.List)
	users.Post("/Usuario", cfg.Users.Get)
	users.Post("/CrearUsuario", cfg.Users.Create)
	users.Post("/ActualizarUsuario", cfg.Users.Update)
	users.Post("/EliminarUsuario", cfg.Users.Delete)
	users.Post("/ActivarUsuario", cfg.Users.Activate)

	vouchers := app.Group("/Bonos", cfg.AuthMiddleware.Handle)
	vouchers.Get("/", staff, cfg.Vouchers.List)
	vouchers.Post("/Bono", staff, cfg.Vouchers.GetByCode)
	vouchers.Post("/GenerarBono", staff, cfg.Vouchers.Issue)
	vouchers.Post("/AplicarBono", staff, cfg.Vouchers.Apply)
	vouchers.Post("/BonosCliente", staff, cfg.Vouchers.ByClient)
	vouchers.Post("/RevertirBono", adminOnly, cfg.Vouchers.Revert)
	vouchers.Post("/HistorialBono", adminOnly, cfg.Vouchers.History)
}
