package plan

import "github.com/KirkDiggler/speedmeet/internal/models"

// SavePlanInput contains parameters for saving a plan
type SavePlanInput struct {
	Plan *models.SessionPlan
}

// GetCurrentPlanInput contains parameters for retrieving the current plan
type GetCurrentPlanInput struct{}

// GetPlanInput contains parameters for retrieving a plan by ID
type GetPlanInput struct {
	PlanID string
}

// ClearCurrentPlanInput contains parameters for clearing the current plan
type ClearCurrentPlanInput struct{}
