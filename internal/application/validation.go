package application

import (
	"fmt"
	"math"

	"logicgrid/internal/domain"
)

// ValidateGateKind checks that kind is one of the known gate kinds.
func ValidateGateKind(fieldName string, kind domain.GateKind) error {
	if !kind.Valid() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown gate kind: %d", kind),
		}
	}
	return nil
}

// ValidateSignal checks that v is LOW, HIGH or UNKNOWN.
func ValidateSignal(fieldName string, v domain.Signal) error {
	if v > domain.Unknown {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown signal: %d", v),
		}
	}
	return nil
}

// ValidateIndex checks that a positional reference is not negative.
// Negative indexes are only accepted where the caller allows "selected".
func ValidateIndex(fieldName string, i int) error {
	if i < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("index must be >= 0, got: %d", i),
		}
	}
	return nil
}

// ValidatePoint checks that p has finite coordinates.
func ValidatePoint(fieldName string, p domain.Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("coordinates must be finite, got: %v,%v", p.X, p.Y),
		}
	}
	return nil
}

// ValidatePoints checks that a polyline has at least one finite point.
func ValidatePoints(fieldName string, pts []domain.Point) error {
	if len(pts) == 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: "at least one point is required",
		}
	}
	for i, p := range pts {
		if err := ValidatePoint(fmt.Sprintf("%s[%d]", fieldName, i), p); err != nil {
			return err
		}
	}
	return nil
}
