package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)

	_, err = GetSimpleText(in, "Again?", &out)
	require.Error(t, err)
}

func TestGetInt(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("12\nabc\n"))
	var out bytes.Buffer

	n, err := GetInt(in, "Month", &out)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	_, err = GetInt(in, "Month", &out)
	require.Error(t, err)
}

func TestGetSecret(t *testing.T) {
	origRead, origTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origTerm })

	t.Run("terminal", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return []byte("123"), nil }

		var out bytes.Buffer
		got, err := GetSecret(bufio.NewReader(strings.NewReader("")), "CVV", &out)
		require.NoError(t, err)
		require.Equal(t, "123", got)
		require.Equal(t, "CVV: \n", out.String())
	})

	t.Run("terminal error", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return nil, errors.New("tty gone") }

		var out bytes.Buffer
		_, err := GetSecret(bufio.NewReader(strings.NewReader("")), "CVV", &out)
		require.Error(t, err)
	})

	t.Run("piped input", func(t *testing.T) {
		isTerminal = func(int) bool { return false }
		readPassword = func(int) ([]byte, error) {
			t.Fatal("must not read from the terminal")
			return nil, nil
		}

		var out bytes.Buffer
		got, err := GetSecret(bufio.NewReader(strings.NewReader("456\n")), "CVV", &out)
		require.NoError(t, err)
		require.Equal(t, "456", got)
	})
}
