package usecase

import "time"

type (
	option struct {
		oracleTimeout time.Duration
		maxGoroutines int
	}

	// OptionFunc type
	OptionFunc func(*option)
)

func getDefaultOption() option {
	return option{
		oracleTimeout: 5 * time.Second,
		maxGoroutines: 10,
	}
}

// SetOracleTimeout option func, bound of each weather and traffic lookup
func SetOracleTimeout(timeout time.Duration) OptionFunc {
	return func(o *option) {
		if timeout > 0 {
			o.oracleTimeout = timeout
		}
	}
}

// SetMaxGoroutines option func, max entries of a single webhook delivery routed at once
func SetMaxGoroutines(max int) OptionFunc {
	return func(o *option) {
		if max > 0 {
			o.maxGoroutines = max
		}
	}
}
