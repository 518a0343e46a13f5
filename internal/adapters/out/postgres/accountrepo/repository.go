package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account. A username collision surfaces as a ValueIsInvalid
// error rather than a raw constraint violation.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByUsername retrieves an account by its login name.
func (r *GormAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetEligibleAgent retrieves an account that may carry deliveries. A missing
// account and an account without the agent role both come back as an
// InvalidReference error, keeping assignment's failure mode uniform.
func (r *GormAccountRepository) GetEligibleAgent(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewInvalidReferenceError("delivery agent", id.String())
		}
		return nil, err
	}

	agent, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	if !agent.IsAgent() {
		return nil, errs.NewInvalidReferenceError("delivery agent", id.String())
	}

	return agent, nil
}
