package store

import "time"

// Repository is the invocation journal: one row per tool call that changed
// (or tried to change) remote records.
type Repository interface {
	RecordCall(call *ToolCall) error
	ListCalls(filter CallFilter) ([]*ToolCall, error)
	GetCall(id string) (*ToolCall, error)
	ClearCalls() (int64, error)
	PruneCalls(before time.Time) (int64, error)

	Close() error
}
