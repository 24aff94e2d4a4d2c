package geometry

import "errors"

// ErrInvalidArgument is the geometry package's invalid-argument sentinel.
// No function in this package returns it: the constructors and queries
// here do not validate their input.
var ErrInvalidArgument = errors.New("geometry: invalid argument")
