package material

import "errors"

var (
	// ErrUnknownMaterial indicates a name outside the supported set.
	ErrUnknownMaterial = errors.New("material: unknown material")

	// ErrUnknownSystem indicates that no overlay exists for the requested variant.
	ErrUnknownSystem = errors.New("material: unknown system variant")

	// ErrMalformedData indicates a parameter file that cannot be decoded.
	ErrMalformedData = errors.New("material: malformed parameter data")

	// ErrInvalidParameter indicates a decoded parameter outside its physical range.
	ErrInvalidParameter = errors.New("material: invalid parameter")
)
