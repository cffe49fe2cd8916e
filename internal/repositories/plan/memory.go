package plan

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/speedmeet/internal/models"
)

// memoryRepository keeps plans in process. The current plan is published through an
// atomic pointer so readers always see a whole snapshot. Only the current plan and
// the one it replaced stay retrievable by ID. Stored plans must not be mutated
// after SavePlan.
type memoryRepository struct {
	current atomic.Pointer[models.SessionPlan]

	// mu serialises writers and guards plans
	mu    sync.RWMutex
	plans map[string]*models.SessionPlan
}

// NewMemory creates an in-process plan repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		plans: make(map[string]*models.SessionPlan),
	}
}

func (r *memoryRepository) SavePlan(ctx context.Context, input *SavePlanInput) error {
	if input == nil || input.Plan == nil {
		return errors.New("input and plan cannot be nil")
	}

	if input.Plan.ID == "" {
		return errors.New("plan ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	previous := r.current.Load()
	if previous != nil && previous.ID == input.Plan.ID {
		r.plans[input.Plan.ID] = input.Plan
		r.current.Store(input.Plan)
		return nil
	}

	plans := map[string]*models.SessionPlan{input.Plan.ID: input.Plan}
	if previous != nil {
		plans[previous.ID] = previous
	}
	r.plans = plans
	r.current.Store(input.Plan)

	return nil
}

func (r *memoryRepository) GetCurrentPlan(ctx context.Context, input *GetCurrentPlanInput) (*models.SessionPlan, error) {
	plan := r.current.Load()
	if plan == nil {
		return nil, ErrNoActiveSession
	}

	return plan, nil
}

func (r *memoryRepository) GetPlan(ctx context.Context, input *GetPlanInput) (*models.SessionPlan, error) {
	if input == nil || input.PlanID == "" {
		return nil, errors.New("input and plan ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[input.PlanID]
	if !ok {
		return nil, ErrPlanNotFound
	}

	return plan, nil
}

func (r *memoryRepository) ClearCurrentPlan(ctx context.Context, input *ClearCurrentPlanInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	plans := make(map[string]*models.SessionPlan, 1)
	if previous := r.current.Load(); previous != nil {
		plans[previous.ID] = previous
	}
	r.plans = plans
	r.current.Store(nil)

	return nil
}
