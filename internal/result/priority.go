package result

import (
	"strings"

	"github.com/thoreinstein/sysdoc/internal/errors"
)

// Priority is the severity of a result, ordered from least to most severe.
type Priority int

const (
	PriorityDebug Priority = iota
	PriorityInfo
	PriorityNotice
	PriorityWarning
	PriorityError
	PriorityAlert
	PriorityEmergency
)

var priorityNames = [...]string{
	PriorityDebug:     "DEBUG",
	PriorityInfo:      "INFO",
	PriorityNotice:    "NOTICE",
	PriorityWarning:   "WARNING",
	PriorityError:     "ERROR",
	PriorityAlert:     "ALERT",
	PriorityEmergency: "EMERGENCY",
}

// String returns the upper-case name of the priority.
func (p Priority) String() string {
	if p < PriorityDebug || p > PriorityEmergency {
		return "UNKNOWN"
	}
	return priorityNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if p < PriorityDebug || p > PriorityEmergency {
		return nil, errors.Newf("invalid priority %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	name := strings.ToUpper(string(text))
	for i, n := range priorityNames {
		if n == name {
			*p = Priority(i)
			return nil
		}
	}
	return errors.Newf("invalid priority %q", string(text))
}

// Issue says whether a result indicates a problem: NO < MAYBE < YES.
type Issue int

const (
	// IssueNo means no problem was found.
	IssueNo Issue = iota
	// IssueMaybe means the outcome is unknown.
	IssueMaybe
	// IssueYes means a problem was found.
	IssueYes
)

var issueNames = [...]string{
	IssueNo:    "NO",
	IssueMaybe: "MAYBE",
	IssueYes:   "YES",
}

// String returns the upper-case name of the issue state.
func (i Issue) String() string {
	if i < IssueNo || i > IssueYes {
		return "UNKNOWN"
	}
	return issueNames[i]
}

// MarshalText implements encoding.TextMarshaler.
func (i Issue) MarshalText() ([]byte, error) {
	if i < IssueNo || i > IssueYes {
		return nil, errors.Newf("invalid issue %d", int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Issue) UnmarshalText(text []byte) error {
	name := strings.ToUpper(string(text))
	for n, s := range issueNames {
		if s == name {
			*i = Issue(n)
			return nil
		}
	}
	return errors.Newf("invalid issue %q", string(text))
}
