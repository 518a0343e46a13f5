package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/commands"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/queries"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// itemIDParam parses the :id path parameter.
func itemIDParam(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("item id")
	}
	return id, nil
}

// uploadFromForm extracts an optional multipart file. It returns a nil
// upload when the field is absent; the returned closer is always safe to
// defer.
func uploadFromForm(ctx echo.Context, field string) (*ports.Upload, func(), error) {
	noop := func() {}

	header, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, errs.NewValueIsInvalidErrorWithCause(field, err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errs.NewValueIsInvalidErrorWithCause(field, err)
	}

	upload := &ports.Upload{
		FieldName:   field,
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}
	return upload, func() { file.Close() }, nil
}

// detailsFromForm collects the optional item detail fields.
func detailsFromForm(ctx echo.Context) item.Details {
	return item.Details{
		Description:       ctx.FormValue("description"),
		Location:          ctx.FormValue("location"),
		DeliveryTime:      ctx.FormValue("deliveryTime"),
		CustomerNumber:    ctx.FormValue("customerNumber"),
		AlternativeNumber: ctx.FormValue("alternativeNumber"),
	}
}

// respondWithItem re-reads an item after a successful mutation and renders
// the full projection, so clients immediately see the agent name and the
// resolved image URLs.
func (s *Server) respondWithItem(ctx echo.Context, id int64, code int) error {
	query, err := queries.NewGetItemQuery(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	updated, err := s.deps.GetItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(code, s.toItemJSON(ctx, updated))
}

// GetAllItems handles GET /api/delivery-items.
func (s *Server) GetAllItems(ctx echo.Context) error {
	items, err := s.deps.GetAllItemsHandler.Handle(ctx.Request().Context(), queries.NewGetAllItemsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.toItemJSONList(ctx, items))
}

// GetPendingItems handles GET /api/delivery-items/pending.
func (s *Server) GetPendingItems(ctx echo.Context) error {
	items, err := s.deps.GetPendingHandler.Handle(ctx.Request().Context(), queries.NewGetPendingItemsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.toItemJSONList(ctx, items))
}

// GetItem handles GET /api/delivery-items/:id.
func (s *Server) GetItem(ctx echo.Context) error {
	id, err := itemIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetItemQuery(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	found, err := s.deps.GetItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.toItemJSON(ctx, found))
}

// CountItemsByStatus handles GET /api/delivery-items/counts. The optional
// agent query parameter narrows the counts to one agent's items.
func (s *Server) CountItemsByStatus(ctx echo.Context) error {
	query := queries.NewCountItemsByStatusQuery()

	if raw := ctx.QueryParam("agent"); raw != "" {
		agentID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.renderError(ctx, errs.NewValueIsInvalidError("agent"))
		}

		query, err = queries.NewCountItemsByStatusQueryForAgent(agentID)
		if err != nil {
			return s.renderError(ctx, err)
		}
	}

	counts, err := s.deps.CountByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, counts)
}

// CreateItem handles POST /api/delivery-items. The request is a multipart
// form with an optional image field.
func (s *Server) CreateItem(ctx echo.Context) error {
	upload, closeUpload, err := uploadFromForm(ctx, "image")
	if err != nil {
		return s.renderError(ctx, err)
	}
	defer closeUpload()

	cmd, err := commands.NewCreateItemCommand(
		ctx.FormValue("name"),
		ctx.FormValue("address"),
		detailsFromForm(ctx),
		upload,
	)
	if err != nil {
		return s.renderError(ctx, err)
	}

	id, err := s.deps.CreateItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return s.respondWithItem(ctx, id, http.StatusCreated)
}

// EditItem handles PUT /api/delivery-items/:id.
func (s *Server) EditItem(ctx echo.Context) error {
	id, err := itemIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	upload, closeUpload, err := uploadFromForm(ctx, "image")
	if err != nil {
		return s.renderError(ctx, err)
	}
	defer closeUpload()

	cmd, err := commands.NewEditItemCommand(
		id,
		ctx.FormValue("name"),
		ctx.FormValue("address"),
		detailsFromForm(ctx),
		upload,
	)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err := s.deps.EditItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignItem handles PUT /api/delivery-items/:id/assign.
func (s *Server) AssignItem(ctx echo.Context) error {
	id, err := itemIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	var body struct {
		AgentID string `json:"agentId"`
	}
	if err := ctx.Bind(&body); err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	agentID, err := kernel.UUIDFromString(body.AgentID)
	if err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidError("agentId"))
	}

	cmd, err := commands.NewAssignItemCommand(id, agentID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err := s.deps.AssignItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return s.respondWithItem(ctx, id, http.StatusOK)
}

// ChangeItemStatus handles PUT /api/delivery-items/:id/status. The target
// status arrives as a form value; marking Delivered may attach a proof
// photo in the delivered_image field.
func (s *Server) ChangeItemStatus(ctx echo.Context) error {
	id, err := itemIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	upload, closeUpload, err := uploadFromForm(ctx, "delivered_image")
	if err != nil {
		return s.renderError(ctx, err)
	}
	defer closeUpload()

	cmd, err := commands.NewChangeItemStatusCommand(id, ctx.FormValue("status"), upload)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err := s.deps.ChangeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return s.respondWithItem(ctx, id, http.StatusOK)
}

// UnassignItem handles PUT /api/delivery-items/:id/unassign.
func (s *Server) UnassignItem(ctx echo.Context) error {
	id, err := itemIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewUnassignItemCommand(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err := s.deps.UnassignItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteItem handles DELETE /api/delivery-items/:id.
func (s *Server) DeleteItem(ctx echo.Context) error {
	id, err := itemIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewDeleteItemCommand(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err := s.deps.DeleteItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
