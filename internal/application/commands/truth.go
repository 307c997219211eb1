package commands

import (
	"context"
	"fmt"
	"strings"

	"logicgrid/internal/application"
	"logicgrid/internal/domain"
)

// TruthRow is one line of a truth table
type TruthRow struct {
	A, B, Out domain.Signal
}

// TruthTableResult contains a gate kind's truth table
type TruthTableResult struct {
	Kind    domain.GateKind
	Rows    []TruthRow
	Message string
}

// TruthTableCommand lists the outputs of a gate kind for every defined
// input pair
type TruthTableCommand struct {
	Kind domain.GateKind
}

// NewTruthTableCommand creates a new TruthTableCommand
func NewTruthTableCommand(kind domain.GateKind) *TruthTableCommand {
	return &TruthTableCommand{Kind: kind}
}

// Validate checks the kind
func (c *TruthTableCommand) Validate() error {
	return application.ValidateGateKind("kind", c.Kind)
}

// Execute builds the table
func (c *TruthTableCommand) Execute(ctx context.Context) (*TruthTableResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	inputs := []domain.Signal{domain.Low, domain.High}
	var rows []TruthRow
	for _, a := range inputs {
		for _, b := range inputs {
			rows = append(rows, TruthRow{A: a, B: b, Out: domain.Evaluate(c.Kind, a, b)})
		}
	}

	return &TruthTableResult{
		Kind:    c.Kind,
		Rows:    rows,
		Message: FormatTruthTable(c.Kind, rows),
	}, nil
}

// FormatTruthTable renders rows as an aligned text table
func FormatTruthTable(kind domain.GateKind, rows []TruthRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", kind)
	if kind.Unary() {
		b.WriteString(" A | OUT\n")
	} else {
		b.WriteString(" A B | OUT\n")
	}
	seen := map[domain.Signal]bool{}
	for _, r := range rows {
		if kind.Unary() {
			if seen[r.A] {
				continue
			}
			seen[r.A] = true
			fmt.Fprintf(&b, " %s | %s\n", r.A.Short(), r.Out.Short())
			continue
		}
		fmt.Fprintf(&b, " %s %s | %s\n", r.A.Short(), r.B.Short(), r.Out.Short())
	}
	return strings.TrimRight(b.String(), "\n")
}
