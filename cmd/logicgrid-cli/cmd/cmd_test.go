package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { truthAll = false })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_Stdin(t *testing.T) {
	src := "gate 1 0 0\nwire 20,7 60,7\nlamp 60 7\npropagate\n"
	out, err := execute(t, src, "run")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Placed 1 gate 0", "Settled after", "circuit: 1 wire(s), 1 gate(s), 1 lamp(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_Error(t *testing.T) {
	_, err := execute(t, "wire 0,0 10,0\nforce wire 3 1\n", "run", "-")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected an error naming line 2, got %v", err)
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"single kind", []string{"truth", "nor"}, "NOR\n A B | OUT\n", false},
		{"unary", []string{"truth", "not"}, "NOT\n A | OUT\n", false},
		{"every kind", []string{"truth", "--all"}, "XNOR", false},
		{"unknown kind", []string{"truth", "mux"}, "", true},
		{"missing kind", []string{"truth"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "", "demo")
	if err != nil {
		t.Fatalf("demo list failed: %v", err)
	}
	for _, name := range []string{"and-gate", "junction", "lamp", "floating-nand", "stale-driver"} {
		if !strings.Contains(out, name) {
			t.Errorf("demo list missing %q:\n%s", name, out)
		}
	}

	out, err = execute(t, "", "demo", "floating-nand")
	if err != nil {
		t.Fatalf("demo floating-nand failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "# NAND with floating inputs") {
		t.Errorf("demo floating-nand output:\n%s", out)
	}

	if _, err := execute(t, "", "demo", "mux"); err == nil {
		t.Error("unknown demo should fail")
	}
}
