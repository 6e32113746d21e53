package gollowmap

import "errors"

var (
	// returned by SubMap.Put when the key falls outside the view bounds
	ErrKeyOutOfRange = errors.New("gollowmap: key is outside the submap range")

	// reported by an iterator that detected a structural change in the
	// backing tree after the iterator was created
	ErrConcurrentModification = errors.New("gollowmap: tree was structurally modified during iteration")

	// returned by Remove on an iterator before the first MoveNext or
	// twice in a row
	ErrIllegalState = errors.New("gollowmap: no current entry, call MoveNext first")

	// returned when a requested submap range is inverted
	ErrEmptyRange = errors.New("gollowmap: submap range is empty or inverted")

	// returned by the bulk builders when the input is not in strictly
	// increasing key order
	ErrUnsortedInput = errors.New("gollowmap: entries are not in strictly increasing key order")
)
