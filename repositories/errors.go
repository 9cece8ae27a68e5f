package repositories

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/waitlist-simple/apperrors"
)

// uniqueViolation is the Postgres error code for a unique-constraint breach.
// Uniqueness is decided here, by the database, so two concurrent identical
// submissions race safely: the loser surfaces as a conflict.
const uniqueViolation = "23505"

// translate converts a storage error into the domain taxonomy. notFoundMsg
// is the entity-specific message used when the record does not exist.
func translate(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(notFoundMsg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "idx_projects_slug":
			return apperrors.NewConflict("Project slug already exists")
		case "idx_projects_api_token":
			return apperrors.NewConflict("Project API token already exists")
		case "idx_waitlist_email_project":
			return apperrors.NewConflict("This email is already on the waitlist for this project")
		case "idx_users_email":
			return apperrors.NewConflict("Email already registered")
		}
		return apperrors.NewConflict("Duplicate record")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeout(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperrors.NewUnavailable(err)
	}

	return apperrors.NewInternal(err)
}
