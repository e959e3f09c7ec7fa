package tags

import "errors"

var (
	// ErrUnknownKind indicates a kind name outside int, float, bool, string, list.
	ErrUnknownKind = errors.New("tags: unknown value kind")

	// ErrBadValue indicates raw text that does not parse as the required kind.
	ErrBadValue = errors.New("tags: value does not match kind")

	// ErrNotAllowed indicates a value outside a Choice's allowed set.
	ErrNotAllowed = errors.New("tags: value not in allowed set")

	// ErrConstraint indicates a numeric value violating Positive or NonNegative.
	ErrConstraint = errors.New("tags: value violates constraint")

	// ErrUnknownTag indicates a name absent from the Catalog.
	ErrUnknownTag = errors.New("tags: unknown tag")

	// ErrDuplicateTag indicates a merged catalog redefines an existing name.
	ErrDuplicateTag = errors.New("tags: duplicate tag")
)
