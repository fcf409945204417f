package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tiservices/backoffice-api/internal/application/auth"
	"github.com/tiservices/backoffice-api/internal/application/inventory"
	"github.com/tiservices/backoffice-api/internal/application/usecase"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *inventory.ItemUseCase
	MovementUC    *inventory.MovementUseCase
	ClienteUC     *usecase.ClienteUseCase
	ProveedorUC   *usecase.ProveedorUseCase
	ColaboradorUC *usecase.ColaboradorUseCase
	HerramientaUC *usecase.HerramientaUseCase
	GuiaUC        *usecase.GuiaUseCase
	SolicitudUC   *inventory.SolicitudUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RoleAdmin)

	// Inventario interior y exterior: mismos handlers, distinto almacén.
	mountInventory(protected, "/inventory", NewItemHandler(deps.ItemUC, entity.AlmacenInterior), soloAdmin)
	mountInventory(protected, "/inventory-exterior", NewItemHandler(deps.ItemUC, entity.AlmacenExterior), soloAdmin)
	mountMovements(protected, "/inventory-movements", NewMovementHandler(deps.MovementUC, entity.AlmacenInterior))
	mountMovements(protected, "/inventory-movements-exterior", NewMovementHandler(deps.MovementUC, entity.AlmacenExterior))
	mountSolicitudes(protected, "/solicitudes", NewSolicitudHandler(deps.SolicitudUC, entity.AlmacenInterior), soloAdmin)
	mountSolicitudes(protected, "/solicitudes-exterior", NewSolicitudHandler(deps.SolicitudUC, entity.AlmacenExterior), soloAdmin)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", soloAdmin, clienteHandler.Delete)

	// Proveedores
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", soloAdmin, proveedorHandler.Delete)

	// Colaboradores
	colaboradores := protected.Group("/colaboradores")
	colaboradorHandler := NewColaboradorHandler(deps.ColaboradorUC)
	colaboradores.Post("/", colaboradorHandler.Create)
	colaboradores.Get("/", colaboradorHandler.List)
	colaboradores.Get("/:id", colaboradorHandler.GetByID)
	colaboradores.Put("/:id", colaboradorHandler.Update)
	colaboradores.Delete("/:id", soloAdmin, colaboradorHandler.Delete)

	// Herramientas
	herramientas := protected.Group("/herramientas")
	herramientaHandler := NewHerramientaHandler(deps.HerramientaUC)
	herramientas.Post("/", herramientaHandler.Create)
	herramientas.Get("/", herramientaHandler.List)
	herramientas.Get("/colaborador/:id", herramientaHandler.ListByColaborador)
	herramientas.Get("/colaborador/:id/responsiva", herramientaHandler.Responsiva)
	herramientas.Get("/:id", herramientaHandler.GetByID)
	herramientas.Put("/:id", herramientaHandler.Update)
	herramientas.Delete("/:id", soloAdmin, herramientaHandler.Delete)

	// Guías
	guias := protected.Group("/guias")
	guiaHandler := NewGuiaHandler(deps.GuiaUC)
	guias.Post("/", guiaHandler.Create)
	guias.Post("/sweep", soloAdmin, guiaHandler.Sweep)
	guias.Get("/", guiaHandler.List)
	guias.Get("/:id", guiaHandler.GetByID)
	guias.Put("/:id", guiaHandler.Update)
	guias.Delete("/:id", soloAdmin, guiaHandler.Delete)
}

func mountInventory(parent fiber.Router, prefix string, h *ItemHandler, soloAdmin fiber.Handler) {
	g := parent.Group(prefix)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", soloAdmin, h.Delete)
	g.Post("/:id/alta", h.Alta)
	g.Post("/:id/baja", h.Baja)
}

func mountSolicitudes(parent fiber.Router, prefix string, h *SolicitudHandler, soloAdmin fiber.Handler) {
	g := parent.Group(prefix)
	g.Post("/", h.Create)
	g.Get("/mias", h.Mias)
	g.Get("/pendientes", soloAdmin, h.Pendientes)
	g.Post("/:id/aprobar", soloAdmin, h.Aprobar)
	g.Post("/:id/rechazar", soloAdmin, h.Rechazar)
}

func mountMovements(parent fiber.Router, prefix string, h *MovementHandler) {
	g := parent.Group(prefix)
	g.Post("/", h.Register)
	g.Get("/", h.List)
	g.Get("/resumen", h.Resumen)
	g.Get("/export", h.Export)
}
