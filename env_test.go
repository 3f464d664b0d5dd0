package toolbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnv(t *testing.T) {
	t.Setenv("TOOLBOX_TEST_NAME", "value")
	assert.Equal(t, "value", ReadEnv("TOOLBOX_TEST_NAME", "default"))
	assert.Equal(t, "default", ReadEnv("TOOLBOX_TEST_MISSING", "default"))
}

func TestReadEnvInt64(t *testing.T) {
	value, err := ReadEnvInt64("TOOLBOX_TEST_MISSING", 17)
	require.NoError(t, err)
	assert.EqualValues(t, 17, value)

	t.Setenv("TOOLBOX_TEST_NUMBER", "-0042")
	value, err = ReadEnvInt64("TOOLBOX_TEST_NUMBER", 17)
	require.NoError(t, err)
	assert.EqualValues(t, -42, value)

	t.Setenv("TOOLBOX_TEST_NUMBER", "9223372036854775808")
	_, err = ReadEnvInt64("TOOLBOX_TEST_NUMBER", 17)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
