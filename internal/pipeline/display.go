package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// recentLogCount is how many trailing log entries to echo per poll.
const recentLogCount = 3

// The service colors its log stream for its own UI; strip the codes before
// re-printing.
var ansiReplacer = strings.NewReplacer("\x1b[34m", "", "\x1b[32m", "", "\x1b[0m", "")

// CleanLog strips ANSI color codes from a log entry.
func CleanLog(entry string) string {
	return ansiReplacer.Replace(entry)
}

// DisplayRecentLogs prints the last few log entries, skipping internal
// __system__ lines.
func DisplayRecentLogs(w io.Writer, logs []string) {
	if len(logs) == 0 {
		return
	}
	start := len(logs) - recentLogCount
	if start < 0 {
		start = 0
	}

	printed := false
	for _, entry := range logs[start:] {
		clean := CleanLog(entry)
		if strings.Contains(clean, "__system__:") {
			continue
		}
		if !printed {
			fmt.Fprintln(w, "   Recent activity:")
			printed = true
		}
		fmt.Fprintf(w, "     - %s\n", clean)
	}
}

// DisplayOutputs prints each named output: strings verbatim, anything else
// as indented JSON.
func DisplayOutputs(w io.Writer, run *Run) {
	if len(run.Outputs) == 0 {
		fmt.Fprintln(w, "\nWarning: no outputs found in the result")
		return
	}

	keys := make([]string, 0, len(run.Outputs))
	for key := range run.Outputs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "\nOUTPUTS:")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, key := range keys {
		value := run.Outputs[key]
		fmt.Fprintf(w, "\n%s:\n", key)
		if s, ok := value.(string); ok {
			fmt.Fprintln(w, s)
			continue
		}
		pretty, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "%v\n", value)
			continue
		}
		fmt.Fprintln(w, string(pretty))
	}
}

// DisplayStatistics prints the run's timing and cost figures.
func DisplayStatistics(w io.Writer, run *Run) {
	fmt.Fprintln(w, "\nJOB STATISTICS:")

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.AppendRows([]table.Row{
		{"Credit Cost", statNumber(run.CreditCost)},
		{"Child Run Credit Cost", statNumber(run.ChildRunCreditCost)},
		{"Node Executions", statNumber(run.NodeExecutions)},
		{"Created", statString(run.CreatedTS)},
		{"Finished", statString(run.FinishedTS)},
	})
	t.Render()
}

func statNumber(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func statString(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
