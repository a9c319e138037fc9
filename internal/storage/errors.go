package storage

import (
	"errors"
	"fmt"

	"github.com/pocket-ledger/backend/internal/models"
)

var (
	ErrInvalidDateRange = errors.New("the date range is invalid")

	errEmptyUserID    = errors.New("the user ID must not be empty")
	errBudgetNotFound = fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound)
)
