package plan

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	_, err := repo.GetCurrentPlan(ctx, &GetCurrentPlanInput{})
	assert.ErrorIs(t, err, ErrNoActiveSession)

	require.NoError(t, repo.SavePlan(ctx, &SavePlanInput{Plan: testPlan("plan-1", now)}))
	require.NoError(t, repo.SavePlan(ctx, &SavePlanInput{Plan: testPlan("plan-2", now)}))

	current, err := repo.GetCurrentPlan(ctx, &GetCurrentPlanInput{})
	require.NoError(t, err)
	assert.Equal(t, "plan-2", current.ID)

	old, err := repo.GetPlan(ctx, &GetPlanInput{PlanID: "plan-1"})
	require.NoError(t, err)
	assert.Equal(t, "plan-1", old.ID)

	_, err = repo.GetPlan(ctx, &GetPlanInput{PlanID: "missing"})
	assert.ErrorIs(t, err, ErrPlanNotFound)

	require.NoError(t, repo.ClearCurrentPlan(ctx, &ClearCurrentPlanInput{}))
	_, err = repo.GetCurrentPlan(ctx, &GetCurrentPlanInput{})
	assert.ErrorIs(t, err, ErrNoActiveSession)

	assert.Error(t, repo.SavePlan(ctx, nil))
}

func TestMemoryRepositoryKeepsOnlyCurrentAndPrevious(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.SavePlan(ctx, &SavePlanInput{Plan: testPlan(fmt.Sprintf("plan-%d", i), now)}))
	}
	assert.Len(t, repo.plans, 2)

	for _, id := range []string{"plan-4", "plan-5"} {
		_, err := repo.GetPlan(ctx, &GetPlanInput{PlanID: id})
		assert.NoError(t, err, id)
	}
	for _, id := range []string{"plan-1", "plan-2", "plan-3"} {
		_, err := repo.GetPlan(ctx, &GetPlanInput{PlanID: id})
		assert.ErrorIs(t, err, ErrPlanNotFound, id)
	}

	// resaving the current plan does not evict the previous one
	require.NoError(t, repo.SavePlan(ctx, &SavePlanInput{Plan: testPlan("plan-5", now)}))
	assert.Len(t, repo.plans, 2)
	_, err := repo.GetPlan(ctx, &GetPlanInput{PlanID: "plan-4"})
	assert.NoError(t, err)

	require.NoError(t, repo.ClearCurrentPlan(ctx, &ClearCurrentPlanInput{}))
	cleared, err := repo.GetPlan(ctx, &GetPlanInput{PlanID: "plan-5"})
	require.NoError(t, err)
	assert.Equal(t, "plan-5", cleared.ID)
	assert.Len(t, repo.plans, 1)
}

func TestMemoryRepositoryConcurrentReplace(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SavePlan(ctx, &SavePlanInput{Plan: testPlan("plan-0", now)}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 200; i++ {
			_ = repo.SavePlan(ctx, &SavePlanInput{Plan: testPlan(fmt.Sprintf("plan-%d", i), now)})
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				plan, err := repo.GetCurrentPlan(ctx, &GetCurrentPlanInput{})
				if !assert.NoError(t, err) {
					return
				}
				// every snapshot is a whole plan
				assert.Len(t, plan.Rounds, plan.Metadata.TotalRounds)
				assert.Len(t, plan.Rounds[0].Tables[0].Members, 2)
			}
		}()
	}

	wg.Wait()

	current, err := repo.GetCurrentPlan(ctx, &GetCurrentPlanInput{})
	require.NoError(t, err)
	assert.Equal(t, "plan-200", current.ID)
}
