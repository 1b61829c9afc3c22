package forage

import "errors"

var (
	// ErrShortPath indicates a food search was asked to scan a path of
	// fewer than two stops.
	ErrShortPath = errors.New("forage: food search needs a path of at least two stops")

	// ErrMismatchedSchedule indicates a composite walk was given different
	// numbers of generators and switch predicates.
	ErrMismatchedSchedule = errors.New("forage: composite walk needs one switch predicate per generator")

	// ErrNoGenerators indicates a composite walk was given nothing to schedule.
	ErrNoGenerators = errors.New("forage: composite walk needs at least one generator")
)
