package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultPollInterval is the fixed wait between status checks.
const DefaultPollInterval = 2 * time.Second

// Poll fetches run snapshots every interval until the state is terminal or
// ctx is cancelled. There is no backoff, attempt limit, or deadline. A fetch
// error is reported and the loop keeps going; this is a content-polling loop,
// not a retry-on-failure mechanism.
func (c *Client) Poll(ctx context.Context, w io.Writer, runID string, interval time.Duration) (*Run, error) {
	fmt.Fprintf(w, "Polling job status for run_id: %s\n", runID)
	fmt.Fprintf(w, "Checking every %s...\n", interval)
	fmt.Fprintln(w, strings.Repeat("-", 50))

	for {
		run, err := c.GetRun(ctx, runID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			fmt.Fprintf(w, "Error polling job status: %v\n", err)
			if err := c.sleep(ctx, interval); err != nil {
				return nil, err
			}
			continue
		}

		fmt.Fprintf(w, "[%s] Job state: %s\n", time.Now().Format("15:04:05"), run.StateLabel())

		if run.State.Terminal() {
			return run, nil
		}
		if run.State == StateRunning {
			DisplayRecentLogs(w, run.Log)
		} else {
			fmt.Fprintf(w, "   Unknown state: %s\n", run.StateLabel())
		}

		if err := c.sleep(ctx, interval); err != nil {
			return nil, err
		}
	}
}

// ReportOutcome prints the terminal banner for a finished run. For DONE it
// optionally saves results (when saveURL is non-empty) and prints outputs and
// statistics; for FAILED it prints the raw snapshot as the diagnostic.
func (c *Client) ReportOutcome(w io.Writer, run *Run, baseDir, saveURL string) {
	if run.State == StateFailed {
		fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
		fmt.Fprintln(w, "JOB FAILED!")
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))
		fmt.Fprintf(w, "Error details: %s\n", string(run.Raw))
		return
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintln(w, "JOB COMPLETED SUCCESSFULLY!")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))

	if saveURL != "" {
		fmt.Fprintln(w, "\nSaving results to organized file structure...")
		SaveResults(w, baseDir, saveURL, run)
	}

	DisplayOutputs(w, run)
	DisplayStatistics(w, run)
}
