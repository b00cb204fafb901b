package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/collegegram/backend/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// translateError maps driver errors onto the domain error set. Deadline
// overruns become ErrTransientStorage so callers know a retry is safe; a
// caller-initiated cancel is not a storage fault and passes through
// untouched, as do duplicate-key violations, which only the friendship
// repository gives a domain meaning.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, mongo.ErrNoDocuments):
		return models.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", models.ErrTransientStorage, err)
	default:
		return err
	}
}
