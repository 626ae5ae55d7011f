package errors

// Parameter validation helpers for topology construction arguments.
// All failures carry ErrCodeInvalidParameter so callers can detect the
// whole class with Is(err, ErrCodeInvalidParameter).

// RequirePositive validates that an integer parameter is strictly positive.
func RequirePositive(name string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidParameter, "%s must be positive, got %d", name, v)
	}
	return nil
}

// RequireEven validates that an integer parameter is even.
// Fan-out parameters derived from switch port counts split ports half up,
// half down, so odd values cannot describe a buildable switch.
func RequireEven(name string, v int) error {
	if v%2 != 0 {
		return New(ErrCodeInvalidParameter, "%s must be even, got %d", name, v)
	}
	return nil
}

// RequireAtLeast validates that v is greater than or equal to min.
func RequireAtLeast(name string, v, min int) error {
	if v < min {
		return New(ErrCodeInvalidParameter, "%s must be at least %d, got %d", name, min, v)
	}
	return nil
}
