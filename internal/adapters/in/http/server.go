// Package http exposes the delivery backend over REST. Handlers translate
// Echo requests into commands and queries, map the error taxonomy onto
// status codes and resolve stored image paths into absolute URLs.
package http

import (
	"log/slog"
	"net/http"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/commands"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/queries"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// ServerDeps carries everything the HTTP layer needs. All handler fields
// are required; PublicBaseURL is optional and overrides the request host
// when resolving upload URLs.
type ServerDeps struct {
	// Command handlers
	CreateItemHandler      commands.CreateItemCommandHandler
	EditItemHandler        commands.EditItemCommandHandler
	DeleteItemHandler      commands.DeleteItemCommandHandler
	AssignItemHandler      commands.AssignItemCommandHandler
	ChangeStatusHandler    commands.ChangeItemStatusCommandHandler
	UnassignItemHandler    commands.UnassignItemCommandHandler
	RegisterAccountHandler commands.RegisterAccountCommandHandler

	// Query handlers
	AuthenticateHandler  queries.AuthenticateQueryHandler
	GetAllItemsHandler   queries.GetAllItemsQueryHandler
	GetPendingHandler    queries.GetPendingItemsQueryHandler
	GetItemHandler       queries.GetItemQueryHandler
	GetAgentItemsHandler queries.GetAgentItemsQueryHandler
	GetAllAgentsHandler  queries.GetAllAgentsQueryHandler
	CountByStatusHandler queries.CountItemsByStatusQueryHandler

	Tokens        *token.Issuer
	PublicBaseURL string
	DevMode       bool
	Logger        *slog.Logger
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	deps   ServerDeps
	logger *slog.Logger
}

// NewServer creates the HTTP server from its dependencies.
func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{deps: deps, logger: logger.With("component", "http")}
}

// RegisterRoutes wires every endpoint onto the Echo instance. Login and
// registration are public; everything else under /api requires a valid
// token, with item mutations restricted by role.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/login", s.Login)
	api.POST("/register", s.Register)

	authed := api.Group("", s.authenticated)

	items := authed.Group("/delivery-items")
	items.GET("", s.GetAllItems)
	items.GET("/pending", s.GetPendingItems)
	items.GET("/counts", s.CountItemsByStatus)
	items.GET("/:id", s.GetItem)
	items.POST("", s.CreateItem, s.requireRole(account.RoleAdmin))
	items.PUT("/:id", s.EditItem, s.requireRole(account.RoleAdmin))
	items.PUT("/:id/assign", s.AssignItem, s.requireRole(account.RoleAdmin))
	items.PUT("/:id/status", s.ChangeItemStatus, s.requireRole(account.RoleAdmin, account.RoleAgent))
	items.PUT("/:id/unassign", s.UnassignItem, s.requireRole(account.RoleAdmin))
	items.DELETE("/:id", s.DeleteItem, s.requireRole(account.RoleAdmin))

	agents := authed.Group("/delivery-agents")
	agents.GET("", s.GetAllAgents)
	agents.GET("/:id/items", s.GetAgentItems)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
