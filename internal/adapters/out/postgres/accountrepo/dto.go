// Package accountrepo persists accounts for dispatchers and delivery
// agents.
package accountrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting accounts.
// Usernames carry a unique index; the duplicate-registration check rides on
// the constraint instead of a read-then-write race.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	PasswordHash string
	PhoneNumber  string
	Role         string `gorm:"index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account entity to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		PhoneNumber:  aggregate.PhoneNumber(),
		Role:         aggregate.Role().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to an account entity.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Username, dto.PasswordHash, dto.PhoneNumber, role, dto.CreatedAt)
}
