package commands

import (
	"context"
)

// AssignItemCommandHandler orchestrates item assignment. The item row is
// loaded under a row lock and the eligibility check, single-assignment
// check and status write all happen inside one transaction, so two
// concurrent assigns on the same unassigned item yield exactly one success
// and one AlreadyAssigned failure.
type AssignItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignItemCommandHandler creates a handler for assignment operations.
func NewAssignItemCommandHandler(uowFactory UoWFactory) AssignItemCommandHandler {
	return AssignItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
//
// Failure modes, in check order: ObjectNotFound for a missing item,
// InvalidReference for a missing or non-agent account, AlreadyAssigned for
// an item that already carries an agent, InvalidTransition when the item's
// status does not permit assignment.
func (h AssignItemCommandHandler) Handle(ctx context.Context, cmd AssignItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	accountRepo := uow.AccountRepository()

	assignee, err := itemRepo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	agent, err := accountRepo.GetEligibleAgent(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = assignee.Assign(agent.ID()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, assignee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
