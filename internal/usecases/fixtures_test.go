package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-smarttasks/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	ownerID   = uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	otherID   = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	taskID    = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	parentID  = uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	fixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	identity  = domain.NewIdentity(ownerID)
)

// runInTransaction makes the unit of work mock invoke its callback with itself.
func runInTransaction(uow *domain_mocks.MockUnitOfWork) {
	uow.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
			return fn(uow)
		})
}
