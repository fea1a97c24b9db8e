package planner

import "errors"

// Validation errors are returned before any geometry work starts and can be
// fixed by correcting the inputs. ErrUnsafePath is different: it means the
// generator itself produced a point inside an obstacle, which is a bug and
// never expected in correct operation.
var (
	ErrInvalidDimensions = errors.New("invalid wall dimensions")
	ErrInvalidObstacle   = errors.New("invalid obstacle")
	ErrInvalidConfig     = errors.New("invalid planner settings")
	ErrUnknownPattern    = errors.New("unknown coverage pattern")
	ErrEmptyPath         = errors.New("no valid coverage path")
	ErrUnsafePath        = errors.New("path point inside obstacle")
)
