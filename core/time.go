// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	var maxStep time.Duration
	if cfg.TargetFramerate > 0 {
		maxStep = time.Second / time.Duration(cfg.TargetFramerate)
	}
	return &Time{
		framerate: cfg.TargetFramerate,
		maxStep:   maxStep,
	}
}

// Time measures the wall time between simulation steps
type Time struct {
	framerate int
	maxStep   time.Duration

	last    time.Time
	started bool
}

// TargetFramerate gets the configured lowest framerate
func (t *Time) TargetFramerate() int {
	return t.framerate
}

// MaxStep is the longest step Step returns, 0 when unlimited
func (t *Time) MaxStep() time.Duration {
	return t.maxStep
}

// ClampStep limits elapsed to max. Negative steps become 0,
// a max of 0 or less leaves elapsed unlimited.
func ClampStep(elapsed, max time.Duration) time.Duration {
	if elapsed < 0 {
		return 0
	}
	if max > 0 && elapsed > max {
		return max
	}
	return elapsed
}

// Reset makes now the time of the previous step.
func (t *Time) Reset(now time.Time) {
	t.last = now
	t.started = true
}

// Step returns the clamped seconds elapsed since the previous step
// and makes now the previous step. The first step is 0 long.
func (t *Time) Step(now time.Time) float32 {
	if !t.started {
		t.Reset(now)
		return 0
	}
	elapsed := ClampStep(now.Sub(t.last), t.maxStep)
	t.last = now
	return float32(elapsed.Seconds())
}
