package routes

import (
	"net/http"

	"github.com/sorrisolabs/odonto-backend/internal/api/handlers"
	"github.com/sorrisolabs/odonto-backend/internal/api/middleware"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	clientHandler    *handlers.CrudHandler[entities.Client]
	equipmentHandler *handlers.CrudHandler[entities.Equipment]
	medicineHandler  *handlers.CrudHandler[entities.Medicine]
	financialHandler *handlers.CrudHandler[entities.Transaction]

	employeeHandler *handlers.EmployeeHandler
	scheduleHandler *handlers.ScheduleHandler
	loginHandler    *handlers.LoginHandler
	reportHandler   *handlers.ReportHandler
	healthHandler   *handlers.HealthHandler

	authMiddleware *middleware.AuthMiddleware
}

// NewRouter creates a new router
func NewRouter(
	clientHandler *handlers.CrudHandler[entities.Client],
	equipmentHandler *handlers.CrudHandler[entities.Equipment],
	medicineHandler *handlers.CrudHandler[entities.Medicine],
	financialHandler *handlers.CrudHandler[entities.Transaction],
	employeeHandler *handlers.EmployeeHandler,
	scheduleHandler *handlers.ScheduleHandler,
	loginHandler *handlers.LoginHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		clientHandler:    clientHandler,
		equipmentHandler: equipmentHandler,
		medicineHandler:  medicineHandler,
		financialHandler: financialHandler,

		employeeHandler: employeeHandler,
		scheduleHandler: scheduleHandler,
		loginHandler:    loginHandler,
		reportHandler:   reportHandler,
		healthHandler:   healthHandler,

		authMiddleware: authMiddleware,
	}
}

// crudRoutes registers the standard five operations plus search for a resource.
func crudRoutes[T any](mux *http.ServeMux, prefix string, h *handlers.CrudHandler[T]) {
	mux.HandleFunc("GET "+prefix, h.List)
	mux.HandleFunc("POST "+prefix, h.Create)
	mux.HandleFunc("GET "+prefix+"/busca", h.Search)
	mux.HandleFunc("GET "+prefix+"/{id}", h.Get)
	mux.HandleFunc("PUT "+prefix+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+prefix+"/{id}", h.Remove)
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Public endpoints
	public := http.NewServeMux()
	public.HandleFunc("GET /health", r.healthHandler.Health)
	public.HandleFunc("POST /api/login", r.loginHandler.Login)

	// Client endpoints
	crudRoutes(r.mux, "/api/clientes", r.clientHandler)

	// Employee endpoints
	r.mux.HandleFunc("GET /api/funcionarios", r.employeeHandler.List)
	r.mux.HandleFunc("POST /api/funcionarios", r.employeeHandler.Create)
	r.mux.HandleFunc("GET /api/funcionarios/busca", r.employeeHandler.Search)
	r.mux.HandleFunc("GET /api/funcionarios/dentistas", r.employeeHandler.Dentists)
	r.mux.HandleFunc("GET /api/funcionarios/{id}", r.employeeHandler.Get)
	r.mux.HandleFunc("PUT /api/funcionarios/{id}", r.employeeHandler.Update)
	r.mux.HandleFunc("DELETE /api/funcionarios/{id}", r.employeeHandler.Remove)
	r.mux.HandleFunc("PATCH /api/funcionarios/{id}/senha", r.employeeHandler.ChangePassword)

	// Inventory endpoints
	crudRoutes(r.mux, "/api/equipamentos", r.equipmentHandler)
	crudRoutes(r.mux, "/api/medicamentos", r.medicineHandler)

	// Schedule endpoints
	r.mux.HandleFunc("GET /api/agendas", r.scheduleHandler.List)
	r.mux.HandleFunc("POST /api/agendas", r.scheduleHandler.Create)
	r.mux.HandleFunc("GET /api/agendas/busca", r.scheduleHandler.Search)
	r.mux.HandleFunc("GET /api/agendas/tipos", r.scheduleHandler.Types)
	r.mux.HandleFunc("GET /api/agendas/{id}", r.scheduleHandler.Get)
	r.mux.HandleFunc("PUT /api/agendas/{id}", r.scheduleHandler.Update)
	r.mux.HandleFunc("DELETE /api/agendas/{id}", r.scheduleHandler.Remove)
	r.mux.HandleFunc("PATCH /api/agendas/{id}/concluir", r.scheduleHandler.Complete)

	// Financial endpoints
	crudRoutes(r.mux, "/api/financeiro", r.financialHandler)

	// Report endpoints
	r.mux.HandleFunc("GET /api/relatorios/agendas", r.reportHandler.Schedules)
	r.mux.HandleFunc("GET /api/relatorios/financeiro", r.reportHandler.Financial)
	r.mux.HandleFunc("GET /api/relatorios/equipamentos", r.reportHandler.Equipment)
	r.mux.HandleFunc("GET /api/relatorios/medicamentos", r.reportHandler.Medicines)

	// Everything on r.mux requires a valid token; the public mux routes around it.
	public.Handle("/", r.authMiddleware.Wrap(r.mux))

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS is outermost so preflight requests never hit the auth guard.
	var handler http.Handler = public
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
