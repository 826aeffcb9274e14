package cmd

import (
	"reflect"
	"testing"

	"github.com/smack0007/bigc/internal/bigerrors"
)

func TestParseCompileArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *CompileOptions
		wantErr  bigerrors.Kind
	}{
		{
			name:     "long output flag",
			args:     []string{"--output", "./output.c", "./input.big"},
			expected: &CompileOptions{Debug: false, Output: "./output.c", Files: []string{"./input.big"}},
		},
		{
			name:     "short output flag",
			args:     []string{"-o", "./out/output.c", "./src/input.big"},
			expected: &CompileOptions{Debug: false, Output: "./out/output.c", Files: []string{"./src/input.big"}},
		},
		{
			name:     "debug and short output flag",
			args:     []string{"--debug", "-o", "./out/output.c", "./src/input.big"},
			expected: &CompileOptions{Debug: true, Output: "./out/output.c", Files: []string{"./src/input.big"}},
		},
		{
			name:    "no arguments",
			args:    []string{},
			wantErr: bigerrors.NoInputFiles,
		},
		{
			name:    "unknown option",
			args:    []string{"--foo", "bar", "input.big"},
			wantErr: bigerrors.UnknownOption,
		},
		{
			name:    "output flag with no trailing input file",
			args:    []string{"-o", "output.c"},
			wantErr: bigerrors.NoInputFiles,
		},
		{
			name:     "multiple input files",
			args:     []string{"a.big", "b.big"},
			expected: &CompileOptions{Files: []string{"a.big", "b.big"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCompileArgs(tt.args)

			if tt.wantErr != 0 {
				if err == nil {
					t.Fatalf("parseCompileArgs(%v) error = nil, want %v", tt.args, tt.wantErr)
				}
				if err.Kind != tt.wantErr {
					t.Fatalf("parseCompileArgs(%v) error.Kind = %v, want %v", tt.args, err.Kind, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseCompileArgs(%v) unexpected error = %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("parseCompileArgs(%v) = %+v, want %+v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestSplitTargetFlag(t *testing.T) {
	rest, target, err := splitTargetFlag([]string{"--target", "wat", "-o", "out.wat", "in.big"})
	if err != nil {
		t.Fatalf("splitTargetFlag() error = %v", err)
	}
	if target != "wat" {
		t.Fatalf("target = %q, want %q", target, "wat")
	}
	if !reflect.DeepEqual(rest, []string{"-o", "out.wat", "in.big"}) {
		t.Fatalf("rest = %v, want [-o out.wat in.big]", rest)
	}
}

func TestSplitTargetFlagDefaultsToC(t *testing.T) {
	rest, target, err := splitTargetFlag([]string{"in.big"})
	if err != nil {
		t.Fatalf("splitTargetFlag() error = %v", err)
	}
	if target != "c" {
		t.Fatalf("target = %q, want %q", target, "c")
	}
	if !reflect.DeepEqual(rest, []string{"in.big"}) {
		t.Fatalf("rest = %v, want [in.big]", rest)
	}
}

func TestSplitTargetFlagMissingValue(t *testing.T) {
	_, _, err := splitTargetFlag([]string{"in.big", "-t"})
	if err == nil {
		t.Fatalf("expected an error for a trailing -t with no value")
	}
}
