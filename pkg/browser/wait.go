package browser

import (
	"fmt"
	"time"
)

// PollResult reports how a condition poll ended. Met distinguishes a
// satisfied condition from a timed-out one; there is no way to confuse the
// two outcomes at a call site.
type PollResult struct {
	// Met is true when the predicate returned true before the timeout
	Met bool

	// Elapsed is how long the poll ran
	Elapsed time.Duration

	// Attempts is the number of times the predicate was evaluated
	Attempts int
}

// Poll evaluates pred every interval until it returns true or timeout
// elapses. The predicate is checked once immediately, then no more often than
// the interval, so the time between the first and last evaluation of a
// timed-out poll is at least timeout.
//
// A predicate error aborts the poll and is returned as-is; the caller decides
// whether an error while checking is itself a failure.
func Poll(pred func() (bool, error), timeout, interval time.Duration) (PollResult, error) {
	if timeout <= 0 {
		timeout = DefaultWaitBudget
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	start := time.Now()
	deadline := start.Add(timeout)
	result := PollResult{}

	for {
		result.Attempts++
		ok, err := pred()
		if err != nil {
			result.Elapsed = time.Since(start)
			return result, fmt.Errorf("poll predicate failed: %w", err)
		}
		if ok {
			result.Met = true
			result.Elapsed = time.Since(start)
			return result, nil
		}

		// A timed-out poll is only reported after the full budget has
		// elapsed, so the final check lands on or after the deadline.
		remaining := time.Until(deadline)
		if remaining <= 0 {
			result.Elapsed = time.Since(start)
			return result, nil
		}
		if remaining < interval {
			time.Sleep(remaining)
		} else {
			time.Sleep(interval)
		}
	}
}

// WaitFor polls pred on the session's configured interval until it holds or
// the session's wait budget elapses. desc names the condition in failure
// output. A timed-out wait fails with *ConditionTimeoutError.
//
// This is the replacement for unconditional sleeps: callers state what they
// are waiting for, and a wait that never completes is an error instead of a
// race left to timing luck.
func (s *Session) WaitFor(desc string, pred func() (bool, error)) error {
	if err := s.ensureReady("WaitFor"); err != nil {
		return err
	}

	result, err := Poll(pred, s.waitBudget, s.pollInterval)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", desc, err)
	}
	if !result.Met {
		return &ConditionTimeoutError{
			Description: desc,
			Timeout:     s.waitBudget,
			Attempts:    result.Attempts,
		}
	}
	return nil
}
