// Package saga runs a sequence of steps where each completed step can be
// undone. When a step fails, the compensations of every step that already
// succeeded run in reverse order.
package saga

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

// Step is one unit of work. Compensate may be nil for steps that leave
// nothing behind or that are last in the sequence.
type Step struct {
	Name       string
	Do         func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError reports which step failed. Compensation errors are joined onto
// Err.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("saga step %q: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// Saga is built with New and Then, and executed once with Run.
type Saga struct {
	name  string
	steps []Step
}

func New(name string) *Saga { return &Saga{name: name} }

// Then appends a step.
func (s *Saga) Then(name string, do, compensate func(ctx context.Context) error) *Saga {
	s.steps = append(s.steps, Step{Name: name, Do: do, Compensate: compensate})
	return s
}

// Run executes the steps in order. Compensations run with a context that is
// not cancelled by the caller so cleanup finishes even after a client hangs up.
func (s *Saga) Run(ctx context.Context) error {
	log := slogx.FromContext(ctx).With("saga", s.name)

	for i, step := range s.steps {
		err := step.Do(ctx)
		if err == nil {
			continue
		}

		log.Warn("saga step failed, compensating", "step", step.Name, "err", err)
		cerr := s.compensate(context.WithoutCancel(ctx), i-1)
		if cerr != nil {
			log.Error("saga compensation incomplete", "step", step.Name, "err", cerr)
			err = errors.Join(err, cerr)
		}
		return &StepError{Step: step.Name, Err: err}
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, from int) error {
	var errs []error
	for i := from; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			errs = append(errs, fmt.Errorf("compensate %q: %w", step.Name, err))
		}
	}
	return errors.Join(errs...)
}
