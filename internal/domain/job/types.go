package job

type Status string

const (
	StatusPending  Status = "pending"
	StatusDone     Status = "done"
	StatusMockDone Status = "mock_done"
	StatusError    Status = "error"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s != StatusPending
}
