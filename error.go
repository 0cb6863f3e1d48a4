package l1miss

import "fmt"

type constError string

const (
	// ErrNilTickSource may be returned from [New].
	ErrNilTickSource = constError("nil tick source")
	// ErrNoCandidates is the panic value of [Victim]
	// and [Policy.GetVictim] when given an empty set.
	ErrNoCandidates = constError("no replacement candidates")
)

func (errStr constError) Error() string { return string(errStr) }

func noCandidatesError() error {
	return fmt.Errorf(
		"%w: a victim must be chosen from at least 1 way",
		ErrNoCandidates)
}
