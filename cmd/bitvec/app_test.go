package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hupe1980/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"bitvec"}, args...))
	return out.String(), errOut.String(), err
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "", "info", "1", "3", "5", "1000")
	require.NoError(t, err)

	assert.Contains(t, out, "count:    4\n")
	assert.Contains(t, out, "first:    1\n")
	assert.Contains(t, out, "last:     1000\n")
	assert.Contains(t, out, "members:  {1, 3, 5, 1000}\n")
	assert.Contains(t, out, "hex:      "+"2a")
	assert.Regexp(t, `kernel:   (generic|unrolled)\n`, out)
}

func TestInfo_Stdin(t *testing.T) {
	out, _, err := run(t, "7 8\n9", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "members:  {7, 8, 9}\n")
}

func TestInfo_LogsSkippedTokens(t *testing.T) {
	out, logs, err := run(t, "", "--log-format", "json", "info", "1", "x", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "members:  {1, 2}\n")
	assert.Contains(t, logs, `"msg":"skipped unparseable token"`)
	assert.Contains(t, logs, `"token":"x"`)
}

func TestEncodeDecode_Binary(t *testing.T) {
	out, _, err := run(t, "", "encode", "0", "9", "70")
	require.NoError(t, err)

	encoded := strings.TrimSpace(out)
	assert.Equal(t, "0102000000000000"+"40", encoded)

	out, _, err = run(t, "", "decode", encoded)
	require.NoError(t, err)
	assert.Equal(t, "0 9 70\n", out)
}

func TestEncodeDecode_JSON(t *testing.T) {
	for _, format := range []string{"json", "go-json"} {
		t.Run(format, func(t *testing.T) {
			out, _, err := run(t, "", "encode", "--format", format, "5", "1", "3")
			require.NoError(t, err)
			assert.Equal(t, "[1,3,5]\n", out)

			out, _, err = run(t, "", "decode", "-f", format, "[4,2]")
			require.NoError(t, err)
			assert.Equal(t, "2 4\n", out)
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "", "encode", "--format", "xml", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestDecode_BadHex(t *testing.T) {
	_, _, err := run(t, "", "decode", "zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode hex")
}

func TestOp(t *testing.T) {
	tests := []struct {
		op     string
		result string
		count  string
	}{
		{"union", "{1, 2, 3, 4}", "4"},
		{"intersection", "{3}", "1"},
		{"difference", "{1, 2}", "2"},
		{"xor", "{1, 2, 4}", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			out, _, err := run(t, "", "op", tt.op, "--left", "1 2 3", "--right", "3 4")
			require.NoError(t, err)
			assert.Equal(t, "result: "+tt.result+"\ncount:  "+tt.count+"\n", out)
		})
	}
}

func TestRange(t *testing.T) {
	out, _, err := run(t, "", "range", "add", "--start", "3", "--end", "6", "1")
	require.NoError(t, err)
	assert.Equal(t, "{1, 3, 4, 5, 6}\n", out)

	out, _, err = run(t, "", "range", "remove", "--start", "2", "--end", "4", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	assert.Equal(t, "{1, 5}\n", out)
}

func TestRange_Invalid(t *testing.T) {
	_, logs, err := run(t, "", "range", "add", "--start", "9", "--end", "2", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, bitvec.ErrInvalidRange)
	assert.Contains(t, logs, "range operation rejected")
}

func TestLogLevel_Invalid(t *testing.T) {
	_, _, err := run(t, "", "--log-level", "loud", "info", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}
