package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// defaultActivityOptions covers provider calls that internally poll
// long-running operations to completion; domain purchases in particular can
// take several minutes. MaximumAttempts is 1: the provider client owns any
// retrying, and a failed step must fall through to cleanup, not be re-run.
func defaultActivityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
}
