package doctor

import "github.com/thoreinstein/sysdoc/internal/result"

// Entry describes one registered pair.
type Entry struct {
	Check    string `json:"check"`
	Data     string `json:"data"`
	Category string `json:"category,omitempty"`
}

// List returns the registered pairs as entries, in order.
func (r *Runner) List() []Entry {
	entries := make([]Entry, 0, len(r.pairs))
	for _, p := range r.pairs {
		entries = append(entries, Entry{
			Check:    checkName(p),
			Data:     dataName(p),
			Category: p.Category,
		})
	}
	return entries
}

// Outcome is the result a single pair contributed to the last Check.
type Outcome struct {
	Check  string
	Data   string
	Result *result.Result
}

// Outcomes returns the results of the last Check in pair order. Pairs that
// contributed nothing are left out.
func (r *Runner) Outcomes() []Outcome {
	var out []Outcome
	for _, p := range r.pairs {
		if p.outcome == nil {
			continue
		}
		out = append(out, Outcome{Check: checkName(p), Data: dataName(p), Result: p.outcome})
	}
	return out
}
