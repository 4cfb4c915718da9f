package texttype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlvhdr/texttype/internal/config"
)

func TestApplyFlags(t *testing.T) {
	require.NoError(t, rootCmd.ParseFlags([]string{
		"--typing-speed", "5",
		"--pause=20",
		"--loop=false",
		"--cursor-char", "_",
		"--backend", config.BackendTcell,
		"--exit",
	}))

	c := config.Default()
	c.Animation.DeletingSpeed = 33 * time.Millisecond

	require.NoError(t, applyFlags(rootCmd, []string{"Hello", "Gophers"}, &c))

	assert.Equal(t, []string{"Hello", "Gophers"}, c.Animation.Texts)
	assert.Equal(t, 5*time.Millisecond, c.Animation.TypingSpeed)
	assert.Equal(t, 33*time.Millisecond, c.Animation.DeletingSpeed, "unchanged flags keep the loaded value")
	assert.Equal(t, 20*time.Millisecond, c.Animation.PauseDuration)
	assert.False(t, c.Animation.Loop)
	assert.True(t, c.Animation.ShowCursor)
	assert.Equal(t, "_", c.Animation.CursorCharacter)
	assert.Equal(t, config.BackendTcell, c.Backend)
	assert.True(t, c.ExitWhenDone)
	assert.NoError(t, c.Validate())
}
