package postgres

import (
	"strings"

	domainerrors "roster/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. GORM's TranslateError
// covers most drivers; the message checks are a fallback.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

// membershipReferenceError classifies a foreign-key violation on the
// organisation_members join table. Postgres names the violated constraint
// in the error text, and only the user-side constraint mentions "user";
// the join table itself does not.
func membershipReferenceError(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "user") {
		return domainerrors.ErrUserNotFound.WrapMessage("membership references a missing user")
	}

	return domainerrors.ErrOrganisationNotFound.WrapMessage("membership references a missing organisation")
}
