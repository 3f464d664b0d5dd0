package toolbox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu(t *testing.T) {
	t.Run("With empty menu", func(t *testing.T) {
		scanner, _, _ := newTestScanner(strings.NewReader("1\n"))
		menu := &Menu{}
		assert.ErrorIs(t, menu.Select(scanner), ErrEmptyMenu)
	})

	t.Run("With show and select", func(t *testing.T) {
		var selected []int
		callback := func(id int) { selected = append(selected, id) }

		menu := &Menu{}
		menu.AddItem(10, "first", callback)
		menu.AddItem(20, "next", callback)
		assert.Equal(t, 2, menu.Len())

		shown := &bytes.Buffer{}
		require.NoError(t, menu.Show(shown))
		assert.Equal(t, "1: first\n2: next\n", shown.String())

		scanner, output, errOutput := newTestScanner(strings.NewReader("3\nzero\n0\n2\n"))
		require.NoError(t, menu.Select(scanner))
		assert.Equal(t, []int{20}, selected)
		assert.Equal(t, strings.Repeat(MenuPrompt, 4), output.String())
		assert.Equal(t, strings.Repeat(MenuErrorMessage+"\n", 3), errOutput.String())
	})

	t.Run("With exhausted input", func(t *testing.T) {
		menu := &Menu{}
		menu.AddItem(1, "only", nil)
		scanner, _, _ := newTestScanner(strings.NewReader("5\n"))
		assert.ErrorIs(t, menu.Select(scanner), ErrEndOfInput)
	})

	t.Run("With reset", func(t *testing.T) {
		menu := &Menu{}
		menu.AddItem(1, "only", nil)
		menu.Reset()
		assert.Zero(t, menu.Len())
	})
}
