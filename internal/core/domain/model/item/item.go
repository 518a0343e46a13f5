package item

import (
	"errors"
	"strings"
	"time"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

// Domain errors for item construction and identity.
var (
	// ErrNameIsRequired is returned when creating an item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when creating an item without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
	// ErrIDAlreadySet is returned when the store tries to assign an identifier twice.
	ErrIDAlreadySet = errors.New("item ID is already set")
)

// Details groups the optional free-form attributes of a delivery item.
// All fields may be empty.
type Details struct {
	Description       string
	Location          string
	DeliveryTime      string
	CustomerNumber    string
	AlternativeNumber string
}

// Item is the DeliveryItem aggregate root. It owns the authoritative status
// and assignment fields and is the single place where the lifecycle
// invariants are enforced:
//
//   - an agent reference is present exactly when the status carries one
//   - status only moves along the directed transition graph
//   - at most one agent is assigned at any time; assignment of an already
//     assigned item is rejected until it is unassigned
//
// The identifier is assigned by the store on first insert; a fresh aggregate
// has ID 0 until then. Construct through NewItem (new items, status Pending)
// or RestoreItem (persistence round trips).
type Item struct {
	// id is the store-assigned identifier; 0 until first persisted
	id int64

	name    string
	address string
	details Details

	// status is the current lifecycle state
	status Status

	// assignedAgentID references the delivery agent; nil means unassigned
	assignedAgentID *kernel.UUID

	// imageRef is the optional photo captured at creation or edit time
	imageRef *kernel.StorageRef

	// deliveredImageRef is the optional proof-of-delivery photo
	deliveredImageRef *kernel.StorageRef

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewItem creates a fresh delivery item in Pending status with no agent.
// Name and address are required; everything in details is optional.
func NewItem(name, address string, details Details) (*Item, error) {
	item := &Item{
		status:    Pending,
		details:   details,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setAddress(address),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persisted state. Unlike NewItem it
// accepts any valid status/agent combination but still rejects states that
// violate the assignment invariant.
func RestoreItem(
	id int64,
	name, address string,
	details Details,
	status Status,
	assignedAgentID *kernel.UUID,
	imageRef, deliveredImageRef *kernel.StorageRef,
	createdAt time.Time,
) (*Item, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if assignedAgentID != nil && !status.CarriesAgent() {
		return nil, errs.NewValueIsInvalidError("assigned agent is not permitted in status " + status.String())
	}

	item := &Item{
		id:                id,
		status:            status,
		details:           details,
		assignedAgentID:   assignedAgentID,
		imageRef:          imageRef,
		deliveredImageRef: deliveredImageRef,
		createdAt:         createdAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setAddress(address),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was built through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// SetID records the store-assigned identifier after the first insert.
// Fails if an identifier is already present.
func (i *Item) SetID(id int64) error {
	if i.id != 0 {
		return ErrIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("item ID")
	}
	i.id = id
	return nil
}

// ID returns the store-assigned identifier, 0 for unpersisted items.
func (i *Item) ID() int64 { return i.id }

// Name returns the item name.
func (i *Item) Name() string { return i.name }

// Address returns the delivery address.
func (i *Item) Address() string { return i.address }

// Details returns the optional free-form attributes.
func (i *Item) Details() Details { return i.details }

// Status returns the current lifecycle state.
func (i *Item) Status() Status { return i.status }

// AssignedAgent returns the assigned agent's ID, nil when unassigned.
func (i *Item) AssignedAgent() *kernel.UUID { return i.assignedAgentID }

// ImageRef returns the creation/edit photo reference, nil when absent.
func (i *Item) ImageRef() *kernel.StorageRef { return i.imageRef }

// DeliveredImageRef returns the proof-of-delivery photo reference, nil when absent.
func (i *Item) DeliveredImageRef() *kernel.StorageRef { return i.deliveredImageRef }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// Assign attaches a delivery agent and moves the item to Assigned.
//
// Preconditions, checked in order:
//   - agentID must be a valid identifier
//   - no agent is currently assigned (AlreadyAssigned otherwise; the item
//     must be unassigned first)
//   - the edge current status -> Assigned exists (InvalidTransition
//     otherwise, so Cancelled or Delivered items can never be assigned)
//
// Agent existence and role eligibility are checked by the caller against the
// agent directory before invoking this method.
func (i *Item) Assign(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if i.assignedAgentID != nil {
		return errs.NewAlreadyAssignedError(i.id, i.assignedAgentID.String())
	}

	newStatus, err := i.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	i.status = newStatus
	i.assignedAgentID = &agentID
	return nil
}

// ChangeStatus moves the item along the transition graph.
//
// Returns an InvalidTransition error naming both endpoints when the edge
// does not exist, and NotAssigned when the destination requires an agent
// but none is attached; attaching one goes through Assign. A transition to
// Cancelled releases the agent reference; Delivered keeps it for the audit
// trail.
func (i *Item) ChangeStatus(next Status) error {
	newStatus, err := i.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if newStatus.CarriesAgent() && i.assignedAgentID == nil {
		return errs.NewNotAssignedError(i.id)
	}

	i.status = newStatus
	if !newStatus.CarriesAgent() {
		i.assignedAgentID = nil
	}
	return nil
}

// Unassign detaches the agent and returns the item to Pending.
//
// Fails with NotAssigned when no agent is attached, and with
// InvalidTransition when the status is anything but Assigned; an item
// cannot be unassigned once picked up.
func (i *Item) Unassign() error {
	if i.assignedAgentID == nil {
		return errs.NewNotAssignedError(i.id)
	}

	if i.status != Assigned {
		return errs.NewInvalidTransitionError(i.status.String(), Pending.String())
	}

	i.status = Pending
	i.assignedAgentID = nil
	return nil
}

// EnsureDeletable checks the deletion precondition: only Pending and
// Delivered items may be removed. In-flight items are kept to preserve the
// audit trail.
func (i *Item) EnsureDeletable() error {
	if i.status != Pending && i.status != Delivered {
		return errs.NewInvalidOperationError("delete", i.status.String())
	}
	return nil
}

// ApplyEdit overwrites the editable fields. Editing is only permitted while
// the item is Pending or Assigned; once picked up the recorded contents are
// frozen.
func (i *Item) ApplyEdit(name, address string, details Details) error {
	if i.status != Pending && i.status != Assigned {
		return errs.NewInvalidOperationError("edit", i.status.String())
	}

	if err := errors.Join(
		i.setName(name),
		i.setAddress(address),
	); err != nil {
		return err
	}

	i.details = details
	return nil
}

// AttachImage replaces the creation/edit photo reference.
func (i *Item) AttachImage(ref kernel.StorageRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	i.imageRef = &ref
	return nil
}

// AttachDeliveredImage records the proof-of-delivery photo reference.
func (i *Item) AttachDeliveredImage(ref kernel.StorageRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	i.deliveredImageRef = &ref
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	i.address = address
	return nil
}
