// Package resilience holds the circuit breaker that guards transcript
// backends. A breaker never retries: it only counts consecutive failures and,
// once open, reports the backend as not ready until a cooldown has passed,
// so that backend selection moves on to the next backend.
//
//	cb := resilience.NewCircuitBreaker(resilience.Config{Name: "youtube"})
//	if err := cb.Execute(func() error { return fetch(ctx) }); errors.Is(err, resilience.ErrCircuitOpen) {
//	    // try another backend
//	}
package resilience
