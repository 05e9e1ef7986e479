package api

import (
	"time"

	"github.com/paradesk-io/paradesk-go/internal/constants"
	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

// retryPolicy maps a retry attempt number (1-based) to the delay to sleep
// before that retry, or ok=false once the schedule is exhausted.
type retryPolicy func(attempt int) (delay time.Duration, ok bool)

// unavailablePolicy is the schedule for service-overload conditions (503,
// or no response at all). Sleeps start long and grow; the loop stops once
// the next sleep would reach the ceiling, which allows two retries.
func unavailablePolicy(attempt int) (time.Duration, bool) {
	delay := constants.UnavailableInitialSleep +
		time.Duration(attempt-1)*constants.UnavailableSleepIncrement

	return delay, delay < constants.UnavailableSleepCeiling
}

// unauthorizedPolicy builds the fixed-interval schedule for transient 401
// responses. The ceiling is the accumulated sleep after which the loop
// gives up; raw-byte uploads use a higher ceiling than other calls.
func unauthorizedPolicy(ceiling time.Duration) retryPolicy {
	return func(attempt int) (time.Duration, bool) {
		accumulated := time.Duration(attempt) * constants.UnauthorizedSleep

		return constants.UnauthorizedSleep, accumulated <= ceiling
	}
}

// autoRetryDelay is the outer-layer schedule for intermittent server
// faults, keyed by the attempt about to run and the configured profile.
// Attempt 5 is the last one and gets no sleep of its own beyond the table.
func autoRetryDelay(attempt int, mode paradesk.AutoRetryMode) time.Duration {
	long := mode == paradesk.AutoRetryLongRunning

	switch attempt {
	case 2:
		if long {
			return 5 * time.Second
		}

		return 1 * time.Second
	case 3:
		if long {
			return 10 * time.Second
		}

		return 2 * time.Second
	case 4:
		if long {
			return 60 * time.Second
		}

		return 5 * time.Second
	default:
		return 0
	}
}

// retryExecutor drives a retry policy against an operation. The sleep
// function is injected so tests can run the schedules without waiting.
type retryExecutor struct {
	sleep func(time.Duration)
}

func newRetryExecutor(sleep func(time.Duration)) *retryExecutor {
	if sleep == nil {
		sleep = time.Sleep
	}

	return &retryExecutor{sleep: sleep}
}

// run re-invokes op while retryable approves the latest result and the
// policy still yields a delay. The initial result is evaluated as-is, so
// sequenced policies each pick up where the previous one left off without
// issuing an extra call.
func (e *retryExecutor) run(
	initial paradesk.CallResult,
	op func() paradesk.CallResult,
	retryable func(*paradesk.CallResult) bool,
	policy retryPolicy,
) paradesk.CallResult {
	result := initial

	for attempt := 1; retryable(&result); attempt++ {
		delay, ok := policy(attempt)
		if !ok {
			break
		}

		e.sleep(delay)

		result = op()
	}

	return result
}
