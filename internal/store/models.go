package store

type ToolCall struct {
	ID         string
	Tool       string
	Arguments  string
	Success    bool
	Error      string
	DurationMS int64
	CreatedAt  int64
}

// CallFilter narrows ListCalls. Zero values mean no restriction.
type CallFilter struct {
	Tool  string
	Limit int
}
