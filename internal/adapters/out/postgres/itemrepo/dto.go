// Package itemrepo provides data transfer objects and mapping functions for
// delivery item persistence. It implements the repository pattern for the
// item aggregate, converting between domain entities and database rows.
package itemrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
)

// ItemDTO represents the database structure for persisting item aggregates.
// The identifier is store-assigned (bigserial); status is kept in its
// canonical string spelling so raw read-side queries stay legible.
type ItemDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	Name              string
	Address           string
	Description       string
	Location          string
	DeliveryTime      string
	CustomerNumber    string
	AlternativeNumber string
	Status            string     `gorm:"index"`
	AssignedAgentID   *uuid.UUID `gorm:"type:uuid;index"`
	ImageRef          *string
	DeliveredImageRef *string
	CreatedAt         time.Time
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "delivery_items"
}

// fromDomain converts an item aggregate to its database representation.
func fromDomain(aggregate *item.Item) ItemDTO {
	var agentID *uuid.UUID
	if id := aggregate.AssignedAgent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	var imageRef, deliveredImageRef *string
	if ref := aggregate.ImageRef(); ref != nil {
		path := ref.String()
		imageRef = &path
	}
	if ref := aggregate.DeliveredImageRef(); ref != nil {
		path := ref.String()
		deliveredImageRef = &path
	}

	details := aggregate.Details()

	return ItemDTO{
		ID:                aggregate.ID(),
		Name:              aggregate.Name(),
		Address:           aggregate.Address(),
		Description:       details.Description,
		Location:          details.Location,
		DeliveryTime:      details.DeliveryTime,
		CustomerNumber:    details.CustomerNumber,
		AlternativeNumber: details.AlternativeNumber,
		Status:            aggregate.Status().String(),
		AssignedAgentID:   agentID,
		ImageRef:          imageRef,
		DeliveredImageRef: deliveredImageRef,
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to an item aggregate via RestoreItem.
func toDomain(dto ItemDTO) (*item.Item, error) {
	status, err := item.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AssignedAgentID != nil {
		id, agentErr := kernel.UUIDFromBytes((*dto.AssignedAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &id
	}

	var imageRef, deliveredImageRef *kernel.StorageRef
	if dto.ImageRef != nil {
		ref, refErr := kernel.NewStorageRef(*dto.ImageRef)
		if refErr != nil {
			return nil, refErr
		}
		imageRef = &ref
	}
	if dto.DeliveredImageRef != nil {
		ref, refErr := kernel.NewStorageRef(*dto.DeliveredImageRef)
		if refErr != nil {
			return nil, refErr
		}
		deliveredImageRef = &ref
	}

	details := item.Details{
		Description:       dto.Description,
		Location:          dto.Location,
		DeliveryTime:      dto.DeliveryTime,
		CustomerNumber:    dto.CustomerNumber,
		AlternativeNumber: dto.AlternativeNumber,
	}

	return item.RestoreItem(
		dto.ID,
		dto.Name,
		dto.Address,
		details,
		status,
		agentID,
		imageRef,
		deliveredImageRef,
		dto.CreatedAt,
	)
}
