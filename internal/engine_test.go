package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cotlang/cotup/internal/rewrite"
	tt "github.com/cotlang/cotup/internal/types"
)

const legacySource = "fn main() i64 {\n" +
	"    let x = 1;\n" +
	"    if x == 1 { return 0; }\n" +
	"    return 1;\n" +
	"}\n"

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEngineRunConvertsFile(t *testing.T) {
	t.Parallel()
	engine := NewEngine(zap.NewNop(), nil, "", false)

	path := writeTempFile(t, t.TempDir(), "expr_001_add.cot", legacySource)
	result := engine.Run(path)

	require.NoError(t, result.Err)
	assert.Equal(t, tt.Converted, result.Status)
	assert.Equal(t, "expression: add", result.Label)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test \"expression: add\" {\n    let x = 1;\n    @assert(x == 1)\n}\n", string(written))
}

func TestEngineDryRunLeavesFileUntouched(t *testing.T) {
	t.Parallel()
	engine := NewEngine(zap.NewNop(), nil, "", true)

	path := writeTempFile(t, t.TempDir(), "expr_001_add.cot", legacySource)
	result := engine.Run(path)

	assert.Equal(t, tt.Converted, result.Status)
	assert.NotEmpty(t, result.Output)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, legacySource, string(onDisk))
}

func TestEngineRunAlreadyConverted(t *testing.T) {
	t.Parallel()
	engine := NewEngine(zap.NewNop(), nil, "", false)

	converted := "test \"expression: add\" {\n    @assert(1 == 1)\n}\n"
	path := writeTempFile(t, t.TempDir(), "expr_001_add.cot", converted)
	result := engine.Run(path)

	assert.Equal(t, tt.Unchanged, result.Status)
	assert.ErrorIs(t, result.Err, rewrite.ErrNoEntryPoint)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, converted, string(onDisk))
}

func TestEngineRunUnparsableBody(t *testing.T) {
	t.Parallel()
	engine := NewEngine(zap.NewNop(), nil, "", false)

	source := "fn main() i64 {\n    return 42;\n}\n"
	path := writeTempFile(t, t.TempDir(), "fn_009_odd.cot", source)
	result := engine.Run(path)

	assert.Equal(t, tt.Unchanged, result.Status)
	assert.ErrorIs(t, result.Err, rewrite.ErrBodyNotRecognized)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, source, string(onDisk))
}

func TestEngineRunMissingFile(t *testing.T) {
	t.Parallel()
	engine := NewEngine(zap.NewNop(), nil, "", false)

	result := engine.Run(filepath.Join(t.TempDir(), "absent.cot"))
	assert.Equal(t, tt.Failed, result.Status)
	assert.Error(t, result.Err)
}

func TestEngineRunSource(t *testing.T) {
	t.Parallel()
	engine := NewEngine(zap.NewNop(), map[string]string{"ptr": "pointer"}, "", false)

	result := engine.RunSource("ptr_002_deref.cot", []byte(legacySource))
	assert.Equal(t, tt.Converted, result.Status)
	assert.Equal(t, "pointer: deref", result.Label)
	assert.Contains(t, result.Output, "test \"pointer: deref\" {")
}
