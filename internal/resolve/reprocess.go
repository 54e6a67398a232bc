package resolve

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/role-taxonomy/internal/types"
)

// DefaultReprocessWorkers bounds the concurrent in-flight generator calls
// during a batch pass. A worker count of 1 degrades to the strictly
// sequential loop.
const DefaultReprocessWorkers = 4

// ReprocessOptions configures a batch pass.
type ReprocessOptions struct {
	Workers int
}

// ReprocessAllJobs re-resolves every job target against the current
// canonical set and rewrites stale role-kit references. Per-job failures are
// caught, counted, and recorded in the job's detail entry; the pass always
// completes. Updated + unchanged + errors equals Processed.
func (e *Engine) ReprocessAllJobs(ctx context.Context, opts ReprocessOptions) (*types.ReprocessReport, error) {
	jobs, err := e.store.ListJobTargets(ctx)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultReprocessWorkers
	}

	details := make([]types.ReprocessDetail, len(jobs))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range jobs {
		g.Go(func() error {
			detail := e.reprocessOne(ctx, &jobs[i])
			mu.Lock()
			details[i] = detail
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; failures live in the detail entries.
	_ = g.Wait()

	report := &types.ReprocessReport{
		Processed: len(jobs),
		Details:   details,
	}
	for _, detail := range details {
		switch detail.Outcome {
		case types.OutcomeUpdated:
			report.Updated++
		case types.OutcomeError:
			report.Errors++
		}
	}
	return report, nil
}

func (e *Engine) reprocessOne(ctx context.Context, job *types.JobTarget) types.ReprocessDetail {
	detail := types.ReprocessDetail{
		JobID:     job.ID,
		RoleTitle: job.RoleTitle,
	}

	input := EnsureInput{RawTitle: job.RoleTitle, Parsed: job.ParsedJD}
	if job.JDText != nil {
		input.JDText = *job.JDText
	}
	if job.CompanyName != nil {
		input.CompanyName = *job.CompanyName
	}

	match, err := e.EnsureRoleKit(ctx, input)
	if err != nil {
		detail.Outcome = types.OutcomeError
		detail.Error = err.Error()
		return detail
	}

	kitID := match.RoleKitID
	detail.RoleKitID = &kitID
	if job.RoleKitID != nil && *job.RoleKitID == kitID {
		detail.Outcome = types.OutcomeUnchanged
		return detail
	}

	if err := e.store.UpdateJobTargetRoleKit(ctx, job.ID, kitID); err != nil {
		detail.Outcome = types.OutcomeError
		detail.Error = err.Error()
		return detail
	}
	detail.Outcome = types.OutcomeUpdated
	return detail
}
