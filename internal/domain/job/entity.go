package job

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPrompt   = errors.New("prompt is required")
	ErrAlreadyFinished = errors.New("job already reached a terminal status")
	ErrInvalidStatus   = errors.New("invalid job status")
)

const (
	MinCount = 1
	MaxCount = 8
)

// ClampCount forces a requested image count into [MinCount, MaxCount].
// Non-positive (including unparseable inputs normalized to 0) becomes 1.
func ClampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// Request is the validated generation request. RunID and RowID are caller
// correlation ids passed through untouched for audit joins.
type Request struct {
	RequestID uuid.UUID
	RunID     string
	RowID     string
	Prompt    string
	Title     string
	Niche     string
	Style     string
	Count     int
	Mock      bool
}

func NewRequest(requestID uuid.UUID, runID, rowID, prompt, title, niche, style string, count int, mock bool) (Request, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Request{}, ErrMissingPrompt
	}
	if runID == "" {
		runID = requestID.String()
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "AI generated design"
	}
	niche = strings.TrimSpace(niche)
	if niche == "" {
		niche = "general"
	}
	return Request{
		RequestID: requestID,
		RunID:     runID,
		RowID:     rowID,
		Prompt:    prompt,
		Title:     title,
		Niche:     niche,
		Style:     strings.TrimSpace(style),
		Count:     ClampCount(count),
		Mock:      mock,
	}, nil
}

// FinalPrompt appends the style hint the way the generation API expects it.
func (r Request) FinalPrompt() string {
	if r.Style == "" {
		return r.Prompt
	}
	return r.Prompt + "\n\nStyle: " + r.Style
}

// Job is the durable run record. It is written in pending before any
// external call so every accepted request stays queryable even on failure.
type Job struct {
	id             uuid.UUID
	request        Request
	status         Status
	generatedCount int
	errMsg         string
	startedAt      time.Time
	finishedAt     *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewJob(req Request, startedAt time.Time) *Job {
	return &Job{
		id:        uuid.New(),
		request:   req,
		status:    StatusPending,
		startedAt: startedAt,
	}
}

func ReconstructJob(
	id uuid.UUID,
	req Request,
	status Status,
	generatedCount int,
	errMsg string,
	startedAt time.Time,
	finishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Job {
	return &Job{
		id:             id,
		request:        req,
		status:         status,
		generatedCount: generatedCount,
		errMsg:         errMsg,
		startedAt:      startedAt,
		finishedAt:     finishedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (j *Job) finish(status Status, at time.Time) error {
	if j.status.IsTerminal() {
		return ErrAlreadyFinished
	}
	if !status.IsTerminal() {
		return ErrInvalidStatus
	}
	j.status = status
	j.finishedAt = &at
	return nil
}

func (j *Job) Complete(generatedCount int, at time.Time) error {
	if err := j.finish(StatusDone, at); err != nil {
		return err
	}
	j.generatedCount = generatedCount
	return nil
}

func (j *Job) CompleteMock(generatedCount int, at time.Time) error {
	if err := j.finish(StatusMockDone, at); err != nil {
		return err
	}
	j.generatedCount = generatedCount
	return nil
}

func (j *Job) Fail(msg string, at time.Time) error {
	if err := j.finish(StatusError, at); err != nil {
		return err
	}
	j.errMsg = msg
	return nil
}

func (j *Job) DurationMS(now time.Time) int64 {
	end := now
	if j.finishedAt != nil {
		end = *j.finishedAt
	}
	return end.Sub(j.startedAt).Milliseconds()
}

func (j *Job) ID() uuid.UUID          { return j.id }
func (j *Job) Request() Request       { return j.request }
func (j *Job) Status() Status         { return j.status }
func (j *Job) GeneratedCount() int    { return j.generatedCount }
func (j *Job) ErrorMessage() string   { return j.errMsg }
func (j *Job) StartedAt() time.Time   { return j.startedAt }
func (j *Job) FinishedAt() *time.Time { return j.finishedAt }
func (j *Job) CreatedAt() time.Time   { return j.createdAt }
func (j *Job) UpdatedAt() time.Time   { return j.updatedAt }
