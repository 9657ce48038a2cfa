package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/renamer/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	assert.NotEqual(t, "ok", Paint(Green, "ok"))
	assert.Contains(t, Paint(Green, "ok"), "ok")

	Configure(config.ColorNever)
	assert.Equal(t, "ok", Paint(Green, "ok"))
}

func TestIsTerminal_RegularFile(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}

func TestResolve_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, resolve(config.ColorAuto))
	assert.True(t, resolve(config.ColorAlways))
}
