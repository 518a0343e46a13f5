package http

import (
	"errors"
	"net/http"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/commands"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/queries"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/login. A failed credential check answers 401
// without revealing whether the username exists.
func (s *Server) Login(ctx echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&body); err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	query, err := queries.NewAuthenticateQuery(body.Username, body.Password)
	if err != nil {
		return s.renderError(ctx, err)
	}

	identity, err := s.deps.AuthenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return ctx.JSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "invalid credentials",
			})
		}
		return s.renderError(ctx, err)
	}

	signed, err := s.deps.Tokens.Issue(token.Principal{
		AccountID: identity.AccountID,
		Username:  identity.Username,
		Role:      identity.Role,
	})
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"token": signed,
		"account": map[string]string{
			"id":       identity.AccountID,
			"username": identity.Username,
			"role":     identity.Role,
		},
	})
}

// Register handles POST /api/register.
func (s *Server) Register(ctx echo.Context) error {
	var body struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		PhoneNumber     string `json:"phoneNumber"`
		Role            string `json:"role"`
	}
	if err := ctx.Bind(&body); err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewRegisterAccountCommand(
		body.Username,
		body.Password,
		body.ConfirmPassword,
		body.PhoneNumber,
		body.Role,
	)
	if err != nil {
		return s.renderError(ctx, err)
	}

	accountID, err := s.deps.RegisterAccountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": accountID.String()})
}

// GetAllAgents handles GET /api/delivery-agents.
func (s *Server) GetAllAgents(ctx echo.Context) error {
	agents, err := s.deps.GetAllAgentsHandler.Handle(ctx.Request().Context(), queries.NewGetAllAgentsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]agentJSON, len(agents))
	for i, agent := range agents {
		response[i] = toAgentJSON(agent)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentItems handles GET /api/delivery-agents/:id/items.
func (s *Server) GetAgentItems(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidError("agent id"))
	}

	query, err := queries.NewGetAgentItemsQuery(agentID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	items, err := s.deps.GetAgentItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.toItemJSONList(ctx, items))
}
