package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-social-client/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	require.Equal(t, "", utils.Value[string](nil))
	require.Equal(t, "x", utils.Value(utils.Ptr("x")))
	require.Equal(t, 0, utils.Value[int](nil))
}

func TestNonEmpty(t *testing.T) {
	require.False(t, utils.NonEmpty(nil))
	require.False(t, utils.NonEmpty(utils.Ptr("")))
	require.False(t, utils.NonEmpty(utils.Ptr("   ")))
	require.True(t, utils.NonEmpty(utils.Ptr("token")))
}
