package ecm

import "errors"

var (
	// ErrModulusTooSmall is returned when n < 2
	ErrModulusTooSmall = errors.New("modulus must be at least 2")

	// ErrModulusTooLarge is returned when n does not fit below MaxModulus
	ErrModulusTooLarge = errors.New("modulus must be below 2^63")

	// ErrInvalidLimit is returned when the smoothness bound is below 2
	ErrInvalidLimit = errors.New("smoothness bound must be at least 2")

	// ErrSingularModulus is returned when every sampled curve was singular
	// modulo n within the sampling cap
	ErrSingularModulus = errors.New("no non-singular curve found within sampling cap")
)
