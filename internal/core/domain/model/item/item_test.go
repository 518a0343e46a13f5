package item_test

import (
	"testing"
	"time"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRestore(t *testing.T, id int64, status item.Status, agentID *kernel.UUID) *item.Item {
	t.Helper()
	restored, err := item.RestoreItem(
		id, "Flowers", "12 Elm St", item.Details{},
		status, agentID, nil, nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return restored
}

func TestNewItem(t *testing.T) {
	t.Run("creates pending unassigned item", func(t *testing.T) {
		created, err := item.NewItem("Flowers", "12 Elm St", item.Details{
			Description:    "Birthday bouquet",
			CustomerNumber: "9876543210",
		})

		require.NoError(t, err)
		assert.Equal(t, item.Pending, created.Status())
		assert.Nil(t, created.AssignedAgent())
		assert.Zero(t, created.ID())
		assert.Nil(t, created.ImageRef())
		assert.Nil(t, created.DeliveredImageRef())
		assert.False(t, created.CreatedAt().IsZero())
		require.NoError(t, created.Validate())
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := item.NewItem("", "12 Elm St", item.Details{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires address", func(t *testing.T) {
		_, err := item.NewItem("Flowers", "   ", item.Details{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestItem_Validate(t *testing.T) {
	var notConstructed item.Item

	require.ErrorIs(t, notConstructed.Validate(), item.ErrItemIsNotConstructed)

	var nilItem *item.Item
	require.ErrorIs(t, nilItem.Validate(), item.ErrItemIsNotConstructed)
}

func TestItem_SetID(t *testing.T) {
	created, err := item.NewItem("Flowers", "12 Elm St", item.Details{})
	require.NoError(t, err)

	require.NoError(t, created.SetID(42))
	assert.Equal(t, int64(42), created.ID())

	require.ErrorIs(t, created.SetID(43), item.ErrIDAlreadySet)
}

func TestItem_Assign(t *testing.T) {
	t.Run("assigns pending unassigned item", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)
		agentID := kernel.NewUUID()

		err := subject.Assign(agentID)

		require.NoError(t, err)
		assert.Equal(t, item.Assigned, subject.Status())
		require.NotNil(t, subject.AssignedAgent())
		assert.True(t, subject.AssignedAgent().IsEqual(agentID))
	})

	t.Run("rejects second assignment", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)
		require.NoError(t, subject.Assign(kernel.NewUUID()))

		err := subject.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	})

	t.Run("rejects assignment of cancelled item", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Cancelled, nil)

		err := subject.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejects zero agent ID", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)

		err := subject.Assign(kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestItem_ChangeStatus(t *testing.T) {
	t.Run("walks the happy path to delivered", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)
		agentID := kernel.NewUUID()
		require.NoError(t, subject.Assign(agentID))

		require.NoError(t, subject.ChangeStatus(item.Picked))
		require.NoError(t, subject.ChangeStatus(item.OutForDelivery))
		require.NoError(t, subject.ChangeStatus(item.Delivered))

		assert.Equal(t, item.Delivered, subject.Status())
		// Delivered keeps the agent reference for the audit trail.
		require.NotNil(t, subject.AssignedAgent())
		assert.True(t, subject.AssignedAgent().IsEqual(agentID))
	})

	t.Run("rejects skipping edges", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)

		err := subject.ChangeStatus(item.Delivered)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "Pending")
		assert.Contains(t, err.Error(), "Delivered")
	})

	t.Run("cancel releases the agent", func(t *testing.T) {
		agentID := kernel.NewUUID()
		subject := mustRestore(t, 1, item.Picked, &agentID)

		require.NoError(t, subject.ChangeStatus(item.Cancelled))

		assert.Equal(t, item.Cancelled, subject.Status())
		assert.Nil(t, subject.AssignedAgent())
	})

	t.Run("attempted delivery can be retried", func(t *testing.T) {
		agentID := kernel.NewUUID()
		subject := mustRestore(t, 1, item.OutForDelivery, &agentID)

		require.NoError(t, subject.ChangeStatus(item.DeliveryAttempted))
		require.NoError(t, subject.ChangeStatus(item.OutForDelivery))
		require.NoError(t, subject.ChangeStatus(item.Delivered))
	})

	t.Run("agent-carrying status requires an attached agent", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)

		err := subject.ChangeStatus(item.Assigned)

		require.ErrorIs(t, err, errs.ErrNotAssigned)
		assert.Equal(t, item.Pending, subject.Status())
		assert.Nil(t, subject.AssignedAgent())
	})

	t.Run("agentless item cannot progress past pending", func(t *testing.T) {
		// A row restored without an agent must not move deeper into the
		// delivery flow; only cancellation stays open.
		subject := mustRestore(t, 1, item.Picked, nil)

		err := subject.ChangeStatus(item.OutForDelivery)
		require.ErrorIs(t, err, errs.ErrNotAssigned)
		assert.Equal(t, item.Picked, subject.Status())

		require.NoError(t, subject.ChangeStatus(item.Cancelled))
	})

	t.Run("terminal statuses reject any move", func(t *testing.T) {
		for _, terminal := range []item.Status{item.Delivered, item.Cancelled} {
			var agentID *kernel.UUID
			if terminal.CarriesAgent() {
				id := kernel.NewUUID()
				agentID = &id
			}
			subject := mustRestore(t, 1, terminal, agentID)

			err := subject.ChangeStatus(item.Pending)

			require.ErrorIs(t, err, errs.ErrInvalidTransition, terminal.String())
		}
	})
}

func TestItem_Unassign(t *testing.T) {
	t.Run("returns assigned item to pending", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)
		require.NoError(t, subject.Assign(kernel.NewUUID()))

		err := subject.Unassign()

		require.NoError(t, err)
		assert.Equal(t, item.Pending, subject.Status())
		assert.Nil(t, subject.AssignedAgent())
	})

	t.Run("fails when not assigned", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)

		err := subject.Unassign()

		require.ErrorIs(t, err, errs.ErrNotAssigned)
	})

	t.Run("fails once picked up", func(t *testing.T) {
		agentID := kernel.NewUUID()
		subject := mustRestore(t, 1, item.Picked, &agentID)

		err := subject.Unassign()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestItem_EnsureDeletable(t *testing.T) {
	t.Run("pending and delivered items may be deleted", func(t *testing.T) {
		require.NoError(t, mustRestore(t, 1, item.Pending, nil).EnsureDeletable())

		agentID := kernel.NewUUID()
		require.NoError(t, mustRestore(t, 1, item.Delivered, &agentID).EnsureDeletable())
	})

	t.Run("in-flight items are protected", func(t *testing.T) {
		agentID := kernel.NewUUID()
		for _, status := range []item.Status{item.Assigned, item.Picked, item.OutForDelivery, item.DeliveryAttempted} {
			subject := mustRestore(t, 1, status, &agentID)

			err := subject.EnsureDeletable()

			require.ErrorIs(t, err, errs.ErrInvalidOperation, status.String())
		}

		require.ErrorIs(t, mustRestore(t, 1, item.Cancelled, nil).EnsureDeletable(), errs.ErrInvalidOperation)
	})
}

func TestItem_ApplyEdit(t *testing.T) {
	t.Run("overwrites editable fields while pending", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)

		err := subject.ApplyEdit("Chocolates", "7 Oak Ave", item.Details{DeliveryTime: "evening"})

		require.NoError(t, err)
		assert.Equal(t, "Chocolates", subject.Name())
		assert.Equal(t, "7 Oak Ave", subject.Address())
		assert.Equal(t, "evening", subject.Details().DeliveryTime)
	})

	t.Run("permitted while assigned", func(t *testing.T) {
		agentID := kernel.NewUUID()
		subject := mustRestore(t, 1, item.Assigned, &agentID)

		require.NoError(t, subject.ApplyEdit("Chocolates", "7 Oak Ave", item.Details{}))
	})

	t.Run("rejected once picked", func(t *testing.T) {
		agentID := kernel.NewUUID()
		subject := mustRestore(t, 1, item.Picked, &agentID)

		err := subject.ApplyEdit("Chocolates", "7 Oak Ave", item.Details{})

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("still requires name and address", func(t *testing.T) {
		subject := mustRestore(t, 1, item.Pending, nil)

		require.Error(t, subject.ApplyEdit("", "7 Oak Ave", item.Details{}))
		require.Error(t, subject.ApplyEdit("Chocolates", "", item.Details{}))
	})
}

func TestItem_Attachments(t *testing.T) {
	subject := mustRestore(t, 1, item.Pending, nil)

	imageRef, err := kernel.NewStorageRef("image-1718031405123.png")
	require.NoError(t, err)
	deliveredRef, err := kernel.NewStorageRef("delivered_image-1718031409999.jpg")
	require.NoError(t, err)

	require.NoError(t, subject.AttachImage(imageRef))
	require.NoError(t, subject.AttachDeliveredImage(deliveredRef))

	require.NotNil(t, subject.ImageRef())
	assert.True(t, subject.ImageRef().IsEqual(imageRef))
	require.NotNil(t, subject.DeliveredImageRef())
	assert.True(t, subject.DeliveredImageRef().IsEqual(deliveredRef))

	require.Error(t, subject.AttachImage(kernel.StorageRef{}))
	require.Error(t, subject.AttachDeliveredImage(kernel.StorageRef{}))
}

func TestRestoreItem(t *testing.T) {
	t.Run("rejects agent on pending item", func(t *testing.T) {
		agentID := kernel.NewUUID()

		_, err := item.RestoreItem(
			1, "Flowers", "12 Elm St", item.Details{},
			item.Pending, &agentID, nil, nil, time.Now().UTC(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := item.RestoreItem(
			1, "Flowers", "12 Elm St", item.Details{},
			item.Unknown, nil, nil, nil, time.Now().UTC(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
