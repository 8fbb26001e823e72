package formatter

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tt "github.com/cotlang/cotup/internal/types"
)

func init() {
	color.NoColor = true
}

func TestFormatResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   tt.Result
		expected string
	}{
		{
			name: "converted",
			result: tt.Result{
				Path:   "tests/expr_001_add.cot",
				Label:  "expression: add",
				Status: tt.Converted,
			},
			expected: "converted: tests/expr_001_add.cot (expression: add)\n",
		},
		{
			name: "unchanged without diagnostic is silent",
			result: tt.Result{
				Path:   "tests/expr_002_sub.cot",
				Status: tt.Unchanged,
			},
			expected: "",
		},
		{
			name: "unchanged with diagnostic",
			result: tt.Result{
				Path:   "tests/fn_003_ret.cot",
				Status: tt.Unchanged,
				Err:    errors.New("no fn main() i64 declaration found"),
			},
			expected: "warning: tests/fn_003_ret.cot: no fn main() i64 declaration found\n",
		},
		{
			name: "failed",
			result: tt.Result{
				Path:   "tests/bad.cot",
				Status: tt.Failed,
				Err:    errors.New("permission denied"),
			},
			expected: "error: tests/bad.cot: permission denied\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, FormatResult(tc.result))
		})
	}
}

func TestFormatPreview(t *testing.T) {
	t.Parallel()

	r := tt.Result{
		Path:   "expr_001_add.cot",
		Status: tt.Converted,
		Output: "test \"expression: add\" {\n    @assert(1 + 1 == 2)\n}",
	}
	got := FormatPreview(r)
	assert.Equal(t, "=== expr_001_add.cot ===\ntest \"expression: add\" {\n    @assert(1 + 1 == 2)\n}\n", got)
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	got := FormatSummary(tt.Summary{Converted: 3, Unchanged: 2, Failed: 1})
	assert.Equal(t, "\nConverted: 3, Unchanged: 2, Failed: 1\n", got)
}
