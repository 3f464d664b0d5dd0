package toolbox

import (
	"time"
)

// TimeRecorder keep a list of time points and measure the duration between a start and an end point
type TimeRecorder struct {
	now     func() time.Time
	records []time.Time
	start   *time.Time
	end     *time.Time
}

type TimeRecorderOption func(*TimeRecorder)

// WithClock replace `time.Now` as source of the time points
func WithClock(now func() time.Time) TimeRecorderOption {
	return func(r *TimeRecorder) { r.now = now }
}

func NewTimeRecorder(options ...TimeRecorderOption) *TimeRecorder {
	result := &TimeRecorder{now: time.Now}
	for _, option := range options {
		option(result)
	}
	return result
}

func (this *TimeRecorder) Record()  { this.records = append(this.records, this.now()) }
func (this *TimeRecorder) Len() int { return len(this.records) }

func (this *TimeRecorder) First() (time.Time, error) { return this.RecordAt(0) }
func (this *TimeRecorder) RecordAt(index int) (time.Time, error) {
	if index < 0 || index >= len(this.records) {
		return time.Time{}, ErrNoRecord
	}
	return this.records[index], nil
}

// Start set the start point, a previous end point is discarded
func (this *TimeRecorder) Start() {
	now := this.now()
	this.start = &now
	this.end = nil
}

func (this *TimeRecorder) End() error {
	if this.start == nil {
		return ErrNoStartPoint
	}
	now := this.now()
	this.end = &now
	return nil
}

func (this *TimeRecorder) Duration() (time.Duration, error) {
	if this.start == nil {
		return 0, ErrNoStartPoint
	}
	if this.end == nil {
		return 0, ErrNoEndPoint
	}
	return this.end.Sub(*this.start), nil
}
