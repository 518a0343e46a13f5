package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/commands"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

func TestNewChangeItemStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewChangeItemStatusCommand(42, "Picked", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.ItemID())
	assert.Equal(t, item.Picked, cmd.Status())
	assert.Nil(t, cmd.DeliveredImage())
}

func TestNewChangeItemStatusCommand_NormalizesRawStatus(t *testing.T) {
	tests := []string{
		"out for delivery",
		"OUT_FOR_DELIVERY",
		"  Out   For\tDelivery  ",
		"out_for delivery",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			cmd, err := commands.NewChangeItemStatusCommand(42, raw, nil)
			require.NoError(t, err)
			assert.Equal(t, item.OutForDelivery, cmd.Status())
		})
	}
}

func TestNewChangeItemStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeItemStatusCommand(42, "Teleported", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestNewChangeItemStatusCommand_InvalidItemID(t *testing.T) {
	_, err := commands.NewChangeItemStatusCommand(-1, "Picked", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeItemStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ChangeItemStatusCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangeItemStatusCommandIsNotConstructed)
}
