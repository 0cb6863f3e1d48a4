package hierarchy

import "fmt"

type constError string

// ErrInvalidConfig may be returned from [New].
const ErrInvalidConfig = constError("invalid config")

func (errStr constError) Error() string { return string(errStr) }

func configError(field string, value any) error {
	return fmt.Errorf(
		"%w: %s must be >=1 but %v was provided",
		ErrInvalidConfig, field, value)
}
