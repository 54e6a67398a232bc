package resolve

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
	"github.com/jonathan/role-taxonomy/internal/types"
)

func makeJob(title string, kitID *uuid.UUID) types.JobTarget {
	return types.JobTarget{ID: uuid.New(), RoleTitle: title, RoleKitID: kitID}
}

func TestReprocessAllJobsUpdatesStaleReferences(t *testing.T) {
	swe := makeKit("Software Engineer (Mid-Level)", "software", taxonomy.SeniorityMid)
	pm := makeKit("Product Manager (Mid-Level)", "product", taxonomy.SeniorityMid)
	store := newFakeStore(swe, pm)

	stale := makeJob("Software Engineer II, Platform", &pm.ID) // points at the wrong kit
	current := makeJob("Product Manager", &pm.ID)
	unassigned := makeJob("Software Engineer", nil)
	store.jobs = []types.JobTarget{stale, current, unassigned}

	engine := NewEngine(store)
	report, err := engine.ReprocessAllJobs(context.Background(), ReprocessOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Updated)
	assert.Equal(t, 0, report.Errors)
	require.Len(t, report.Details, 3)

	// Details keep job order regardless of worker scheduling.
	assert.Equal(t, stale.ID, report.Details[0].JobID)
	assert.Equal(t, types.OutcomeUpdated, report.Details[0].Outcome)
	assert.Equal(t, types.OutcomeUnchanged, report.Details[1].Outcome)
	assert.Equal(t, types.OutcomeUpdated, report.Details[2].Outcome)

	assert.Equal(t, swe.ID, store.updates[stale.ID])
	assert.Equal(t, swe.ID, store.updates[unassigned.ID])
}

func TestReprocessAllJobsIsolatesFailures(t *testing.T) {
	swe := makeKit("Software Engineer (Mid-Level)", "software", taxonomy.SeniorityMid)
	store := newFakeStore(swe)

	failing := makeJob("Product Manager", nil) // forces an insert, which fails
	fine := makeJob("Software Engineer", nil)
	store.jobs = []types.JobTarget{failing, fine}
	store.insertErr = fmt.Errorf("insert blew up")

	engine := NewEngine(store)
	report, err := engine.ReprocessAllJobs(context.Background(), ReprocessOptions{Workers: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, report.Processed, report.Updated+report.Errors+countUnchanged(report))

	assert.Equal(t, types.OutcomeError, report.Details[0].Outcome)
	assert.Contains(t, report.Details[0].Error, "insert blew up")
	assert.Equal(t, types.OutcomeUpdated, report.Details[1].Outcome)
}

func TestReprocessAllJobsUpdateFailureRecorded(t *testing.T) {
	swe := makeKit("Software Engineer (Mid-Level)", "software", taxonomy.SeniorityMid)
	store := newFakeStore(swe)

	job := makeJob("Software Engineer", nil)
	store.jobs = []types.JobTarget{job}
	store.updateErr = func(jobID uuid.UUID) error {
		if jobID == job.ID {
			return fmt.Errorf("row vanished")
		}
		return nil
	}

	engine := NewEngine(store)
	report, err := engine.ReprocessAllJobs(context.Background(), ReprocessOptions{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Errors)
	assert.Contains(t, report.Details[0].Error, "row vanished")
}

func TestReprocessAllJobsEmptySet(t *testing.T) {
	engine := NewEngine(newFakeStore())
	report, err := engine.ReprocessAllJobs(context.Background(), ReprocessOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
	assert.Empty(t, report.Details)
}

func TestReprocessAllJobsListErrorPropagates(t *testing.T) {
	store := newFakeStore()
	store.listJobsErr = fmt.Errorf("connection reset")
	engine := NewEngine(store)

	_, err := engine.ReprocessAllJobs(context.Background(), ReprocessOptions{})
	assert.ErrorContains(t, err, "connection reset")
}

func countUnchanged(report *types.ReprocessReport) int {
	count := 0
	for _, detail := range report.Details {
		if detail.Outcome == types.OutcomeUnchanged {
			count++
		}
	}
	return count
}
