// Package choreo holds the temporal resolution core: the keyframe and layer
// data model, the position interpolator, the layer resolver, and the editor
// that is the sole writer of keyframe data. Every query here is a pure read
// over a snapshot; nothing in this package mutates its inputs.
package choreo
