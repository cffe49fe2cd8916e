package plan

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/speedmeet/internal/repositories/plan Repository

import (
	"context"

	"github.com/KirkDiggler/speedmeet/internal/models"
)

// Repository stores generated session plans and tracks the current one
type Repository interface {
	// SavePlan persists a plan and makes it the current session in one step
	SavePlan(ctx context.Context, input *SavePlanInput) error

	// GetCurrentPlan returns the current session plan
	GetCurrentPlan(ctx context.Context, input *GetCurrentPlanInput) (*models.SessionPlan, error)

	// GetPlan retrieves a plan by ID, current or superseded
	GetPlan(ctx context.Context, input *GetPlanInput) (*models.SessionPlan, error)

	// ClearCurrentPlan leaves the store with no current session
	ClearCurrentPlan(ctx context.Context, input *ClearCurrentPlanInput) error
}
