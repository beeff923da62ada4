package choreo

import "errors"

// Domain errors for choreography mutations.
var (
	// ErrNegativeTime indicates a keyframe or layer timestamp before zero.
	ErrNegativeTime = errors.New("choreo: time must be non-negative")

	// ErrMarkOutOfStage indicates a stage coordinate outside [0,1].
	ErrMarkOutOfStage = errors.New("choreo: stage coordinates must be within [0,1]")

	// ErrSlotRange indicates a performer slot outside 1..3.
	ErrSlotRange = errors.New("choreo: performer slot out of range")

	// ErrLayerSpan indicates a layer whose end does not come after its start.
	ErrLayerSpan = errors.New("choreo: layer must end after it starts")

	// ErrLayerNotFound indicates a layer id with no matching layer.
	ErrLayerNotFound = errors.New("choreo: layer not found")
)
