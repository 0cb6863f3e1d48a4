package tags

import "fmt"

type constError string

const (
	// ErrInvalidGeometry may be returned from [New].
	ErrInvalidGeometry = constError("invalid geometry")
	// ErrNilPolicy may be returned from [New].
	ErrNilPolicy = constError("nil replacement policy")
)

func (errStr constError) Error() string { return string(errStr) }

func geometryError(sets, ways int) error {
	return fmt.Errorf(
		"%w: sets and ways must be >=1 but %d sets of %d ways were requested",
		ErrInvalidGeometry, sets, ways)
}
