package pipeline

import "encoding/json"

// State is the remote job state reported in a run snapshot. Anything outside
// the three known values is treated like RUNNING for continuation purposes.
type State string

const (
	StateRunning State = "RUNNING"
	StateDone    State = "DONE"
	StateFailed  State = "FAILED"
)

// Terminal reports whether polling should stop at this state.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// StartResponse is the reply to a start-pipeline request.
type StartResponse struct {
	RunID string `json:"run_id"`

	Raw json.RawMessage `json:"-"`
}

// Run is a snapshot of a pipeline execution. The remote service owns the
// state; the client only ever reads fresh snapshots.
type Run struct {
	RunID   string         `json:"run_id"`
	State   State          `json:"state"`
	Outputs map[string]any `json:"outputs"`
	Log     []string       `json:"log"`

	CreditCost         *float64 `json:"credit_cost"`
	ChildRunCreditCost *float64 `json:"child_run_credit_cost"`
	NodeExecutions     *float64 `json:"node_executions"`
	CreatedTS          string   `json:"created_ts"`
	FinishedTS         string   `json:"finished_ts"`

	Raw json.RawMessage `json:"-"`
}

// StateLabel is the state for display, with UNKNOWN substituted for an
// absent value.
func (r *Run) StateLabel() string {
	if r.State == "" {
		return "UNKNOWN"
	}
	return string(r.State)
}

// MarkdownOutput returns the run's primary output when it passes the
// markdown heuristic.
func (r *Run) MarkdownOutput() (string, bool) {
	output, _ := r.Outputs["output"].(string)
	if output == "" || !IsMarkdown(output) {
		return "", false
	}
	return output, true
}
