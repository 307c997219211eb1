package application

import (
	"errors"
	"math"
	"testing"

	"logicgrid/internal/domain"
)

func TestValidatePoints(t *testing.T) {
	tests := []struct {
		name      string
		points    []domain.Point
		wantErr   bool
		wantField string
	}{
		{
			name:    "single point",
			points:  []domain.Point{domain.Pt(0, 0)},
			wantErr: false,
		},
		{
			name:    "polyline",
			points:  []domain.Point{domain.Pt(0, 0), domain.Pt(10, 0), domain.Pt(10, 10)},
			wantErr: false,
		},
		{
			name:      "empty",
			points:    nil,
			wantErr:   true,
			wantField: "points",
		},
		{
			name:      "nan coordinate",
			points:    []domain.Point{domain.Pt(0, 0), domain.Pt(math.NaN(), 0)},
			wantErr:   true,
			wantField: "points[1]",
		},
		{
			name:      "infinite coordinate",
			points:    []domain.Point{domain.Pt(0, math.Inf(-1))},
			wantErr:   true,
			wantField: "points[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePoints("points", tt.points)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePoints() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.wantField {
					t.Errorf("expected field %s, got %s", tt.wantField, valErr.Field)
				}
			}
		})
	}
}

func TestValidateGateKind(t *testing.T) {
	if err := ValidateGateKind("kind", domain.Xnor); err != nil {
		t.Errorf("XNOR rejected: %v", err)
	}
	if err := ValidateGateKind("kind", domain.GateKind(42)); err == nil {
		t.Error("expected error for out-of-range kind")
	}
}

func TestValidateSignal(t *testing.T) {
	if err := ValidateSignal("signal", domain.Unknown); err != nil {
		t.Errorf("UNKNOWN rejected: %v", err)
	}
	if err := ValidateSignal("signal", domain.Signal(7)); err == nil {
		t.Error("expected error for out-of-range signal")
	}
}

func TestValidateIndex(t *testing.T) {
	if err := ValidateIndex("index", 0); err != nil {
		t.Errorf("0 rejected: %v", err)
	}
	if err := ValidateIndex("index", -1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestNotFoundError_IsErrNotFound(t *testing.T) {
	err := error(&NotFoundError{Kind: "wire", Index: 3})
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if err.Error() != "wire 3 not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseSelectionKind(t *testing.T) {
	tests := []struct {
		input   string
		want    SelectionKind
		wantErr bool
	}{
		{"wire", SelectWire, false},
		{"g", SelectGate, false},
		{"lamp", SelectLamp, false},
		{"node", SelectNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSelectionKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSelectionKind(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSelectionKind(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
