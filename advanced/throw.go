package advanced

import "github.com/pkg/errors"

// Errors reported to callers. None of them leave a partially modified mesh
// behind: every check happens before the first write.
var (
	ErrInvalidCapacity  = errors.New("capacity must allow at least 4 points")
	ErrInvalidRegion    = errors.New("enclosing region must have a finite, positive size")
	ErrAlreadySetUp     = errors.New("enclosing region is already set up")
	ErrNotSetUp         = errors.New("enclosing region has not been set up")
	ErrOutOfRegion      = errors.New("point lies outside the enclosing region")
	ErrCapacityExceeded = errors.New("triangulation capacity exceeded")
	ErrDuplicatePoint   = errors.New("point coincides with an existing point")
)

// Threading errors through the splitting and flipping code for conditions that
// can only arise from a corrupted mesh would add a lot of noise. Those paths
// panic instead, and the public API recovers to convert to an error.

type TriangulationError error

// Panic with a TriangulationError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulationError(errors.Errorf(format, args...)))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulationError, ok := r.(TriangulationError); ok {
			return triangulationError
		}
		panic(r)
	}
	return nil
}
