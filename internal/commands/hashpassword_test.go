//go:build unit

package commands

import (
	"bytes"
	"strings"
	"testing"

	"evcontrol/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordCommand(t *testing.T) {
	t.Run("prints env lines from piped input", func(t *testing.T) {
		cmd := NewHashPasswordCommand()
		var out bytes.Buffer
		cmd.SetIn(strings.NewReader("s3cret!\ns3cret!\n"))
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--user", "admin"})

		require.NoError(t, cmd.Execute())

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "UI_USER=admin", lines[0])

		hash := strings.TrimSuffix(strings.TrimPrefix(lines[1], "UI_PASSWORD_HASH='"), "'")
		assert.NoError(t, password.ComparePassword(hash, "s3cret!"))
	})

	t.Run("mismatch", func(t *testing.T) {
		answers := []string{"one", "two"}
		read := func(string) (string, error) {
			a := answers[0]
			answers = answers[1:]
			return a, nil
		}
		err := runHashPassword(&bytes.Buffer{}, read, "")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("last line without newline", func(t *testing.T) {
		read := stdinReader(strings.NewReader("abc\nabc"), &bytes.Buffer{})
		first, err := read("")
		require.NoError(t, err)
		second, err := read("")
		require.NoError(t, err)
		assert.Equal(t, "abc", first)
		assert.Equal(t, "abc", second)
	})

	t.Run("empty password", func(t *testing.T) {
		read := stdinReader(strings.NewReader("\n\n"), &bytes.Buffer{})
		err := runHashPassword(&bytes.Buffer{}, read, "")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})
}
