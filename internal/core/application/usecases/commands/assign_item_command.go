package commands

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrAssignItemCommandIsNotConstructed = errors.New(
	"AssignItemCommand must be created via NewAssignItemCommand constructor",
)

// AssignItemCommand represents a request to hand a delivery item to a
// specific agent. Only unassigned items accept an agent; reassignment
// requires an explicit unassign first.
type AssignItemCommand struct { //nolint:recvcheck //using for validation
	itemID  int64
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignItemCommand creates a command to assign an item to an agent.
func NewAssignItemCommand(itemID int64, agentID kernel.UUID) (AssignItemCommand, error) {
	cmd := AssignItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignItemCommand) Validate() error {
	return c.guard.Validate(ErrAssignItemCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c AssignItemCommand) ItemID() int64 { return c.itemID }

// AgentID returns the agent identifier.
func (c AssignItemCommand) AgentID() kernel.UUID { return c.agentID }

func (c *AssignItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidError("item ID")
	}
	c.itemID = itemID
	return nil
}

func (c *AssignItemCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
