package iotesting

import (
	"fmt"
	"strings"
	"sync"
)

// Recorder is a Notifier that keeps every notification in memory.
type Recorder struct {
	mu       sync.Mutex
	statuses []string
	warnings []string
	errors   []error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Status(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warning(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *Recorder) Error(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
}

// Statuses returns copies of recorded status messages.
func (r *Recorder) Statuses() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.statuses...)
}

// Warnings returns copies of recorded warnings.
func (r *Recorder) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warnings...)
}

// Errors returns recorded errors.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errors...)
}

// HasStatus reports if any status message contains substr.
func (r *Recorder) HasStatus(substr string) bool {
	return containsAny(r.Statuses(), substr)
}

// HasWarning reports if any warning contains substr.
func (r *Recorder) HasWarning(substr string) bool {
	return containsAny(r.Warnings(), substr)
}

func containsAny(msgs []string, substr string) bool {
	for _, v := range msgs {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
