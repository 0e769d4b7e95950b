package logging_test

import (
	"bytes"
	"testing"

	"github.com/jrsteele09/go-social-client/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// TestSetup_Level tests the global level and the fallback for unknown levels
func TestSetup_Level(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var out bytes.Buffer
	logging.Setup(&out, "warn")
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), "shown")

	out.Reset()
	logging.Setup(&out, "loud")
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	require.Contains(t, out.String(), "Unknown log level")
}
