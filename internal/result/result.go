// Package result implements the hierarchical status tree produced by a run.
//
// A Result carries a brief summary, an optional detail, a Priority and an
// Issue state. Children may be appended concurrently. The root of a run is
// rolled up once, after every check has finished, to the worst priority and
// the worst issue among its children.
package result

import (
	"sync"
)

// Result is a node in the result tree.
type Result struct {
	Brief    string    `json:"brief" yaml:"brief"`
	Detail   string    `json:"detail,omitempty" yaml:"detail,omitempty"`
	Priority Priority  `json:"priority" yaml:"priority"`
	Issue    Issue     `json:"issue" yaml:"issue"`
	Children []*Result `json:"children,omitempty" yaml:"children,omitempty"`

	mu sync.Mutex
}

// New creates a result node.
func New(brief, detail string, priority Priority, issue Issue) *Result {
	return &Result{
		Brief:    brief,
		Detail:   detail,
		Priority: priority,
		Issue:    issue,
	}
}

// Pass creates a result with no issue at info priority.
func Pass(brief, detail string) *Result {
	return New(brief, detail, PriorityInfo, IssueNo)
}

// Fail creates a result with an issue at error priority.
func Fail(brief, detail string) *Result {
	return New(brief, detail, PriorityError, IssueYes)
}

// Unknown creates a result whose outcome could not be determined.
func Unknown(brief, detail string) *Result {
	return New(brief, detail, PriorityWarning, IssueMaybe)
}

// AddChild appends c to the node's children. It is safe for concurrent use.
func (r *Result) AddChild(c *Result) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Children = append(r.Children, c)
}

// Len returns the number of direct children.
func (r *Result) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Children)
}

// MaxPriority returns the worst priority among the direct children, or
// PriorityDebug when there are none.
func (r *Result) MaxPriority() Priority {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := PriorityDebug
	for _, c := range r.Children {
		if c.Priority > p {
			p = c.Priority
		}
	}
	return p
}

// MaxIssue returns the worst issue among the direct children, or IssueNo
// when there are none.
func (r *Result) MaxIssue() Issue {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := IssueNo
	for _, c := range r.Children {
		if c.Issue > i {
			i = c.Issue
		}
	}
	return i
}

// Rollup sets the node's priority and issue from its children. Call it once
// all children have been added.
func (r *Result) Rollup() {
	p := r.MaxPriority()
	i := r.MaxIssue()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.Priority = p
	r.Issue = i
}

// Walk visits r and its descendants in pre-order with their depth.
func (r *Result) Walk(fn func(node *Result, depth int)) {
	r.walk(fn, 0)
}

func (r *Result) walk(fn func(*Result, int), depth int) {
	fn(r, depth)

	r.mu.Lock()
	children := make([]*Result, len(r.Children))
	copy(children, r.Children)
	r.mu.Unlock()

	for _, c := range children {
		c.walk(fn, depth+1)
	}
}
