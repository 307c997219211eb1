package circuit

import "logicgrid/internal/domain"

// DefaultMaxPasses bounds a propagation run. It is a heuristic for
// circuits with feedback (an oscillator never settles), not a proof that
// every circuit converges within it.
const DefaultMaxPasses = 64

// Default radii, in world units.
const (
	DefaultPinSnapRadius     = 16.0
	DefaultMergeRadius       = 3.5
	DefaultLampConnectRadius = 10.0
	DefaultLampRadius        = 6.0
	DefaultPickRadius        = 8.0
	DefaultGridSize          = 10.0
)

// Options tune the connectivity engine and the scheduler.
type Options struct {
	GridSize          float64 // display grid; callers snap to it before placing
	MaxPasses         int     // propagation pass cap
	PinSnapRadius     float64 // wire endpoint to gate pin
	MergeRadius       float64 // wire endpoint to wire endpoint
	LampConnectRadius float64 // lamp to wire endpoint
	LampRadius        float64 // lamp body, used for hit testing
	PickRadius        float64 // wire hit testing
	GateSize          domain.Point
}

// DefaultOptions returns the editor defaults.
func DefaultOptions() Options {
	return Options{
		GridSize:          DefaultGridSize,
		MaxPasses:         DefaultMaxPasses,
		PinSnapRadius:     DefaultPinSnapRadius,
		MergeRadius:       DefaultMergeRadius,
		LampConnectRadius: DefaultLampConnectRadius,
		LampRadius:        DefaultLampRadius,
		PickRadius:        DefaultPickRadius,
		GateSize:          domain.Pt(domain.GateWidth, domain.GateHeight),
	}
}

// normalized replaces unset (zero) or negative fields with defaults.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.GridSize <= 0 {
		o.GridSize = d.GridSize
	}
	if o.MaxPasses <= 0 {
		o.MaxPasses = d.MaxPasses
	}
	if o.PinSnapRadius <= 0 {
		o.PinSnapRadius = d.PinSnapRadius
	}
	if o.MergeRadius <= 0 {
		o.MergeRadius = d.MergeRadius
	}
	if o.LampConnectRadius <= 0 {
		o.LampConnectRadius = d.LampConnectRadius
	}
	if o.LampRadius <= 0 {
		o.LampRadius = d.LampRadius
	}
	if o.PickRadius <= 0 {
		o.PickRadius = d.PickRadius
	}
	if o.GateSize.X <= 0 || o.GateSize.Y <= 0 {
		o.GateSize = d.GateSize
	}
	return o
}
