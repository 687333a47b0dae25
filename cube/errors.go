package cube

import "errors"

var (
	// ErrInvalidOrder indicates an unusable curve order.
	ErrInvalidOrder = errors.New("cube: invalid curve order")
	// ErrUnsupportedOrder indicates there is no catalog data for the order.
	ErrUnsupportedOrder = errors.New("cube: no catalog data for curve order")
	// ErrInvalidSide indicates a side index or ID outside the die.
	ErrInvalidSide = errors.New("cube: invalid side")
	// ErrInvalidCoordinate indicates a negative coordinate.
	ErrInvalidCoordinate = errors.New("cube: coordinates must be non-negative")
	// ErrInvalidRegion indicates an empty region or one spanning several sides.
	ErrInvalidRegion = errors.New("cube: region must be non-empty and lie on one side")
	// ErrUnknownRegion indicates a lookup for a region not in the catalog.
	ErrUnknownRegion = errors.New("cube: unknown region")
	// ErrCatalogData indicates authored catalog data that breaks an invariant.
	ErrCatalogData = errors.New("cube: inconsistent catalog data")
)
