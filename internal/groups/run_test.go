package groups

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FiltersAndWrites(t *testing.T) {
	input := writeTempCSV(t, "Name,Id\nApp-DEV-01,1\nApp-PROD-01,2\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	result, err := Run(input, output, NewFilter(nil), zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, Result{Total: 2, Excluded: 1, Kept: 1, Wrote: true}, result)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Name,Id\nApp-PROD-01,2\n", string(data))
}

func TestRun_NoSurvivorsSkipsWrite(t *testing.T) {
	input := writeTempCSV(t, "Name,Id\nApp-DEV-01,1\nApp-UAT-02,2\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	result, err := Run(input, output, NewFilter(nil), zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, Result{Total: 2, Excluded: 2, Kept: 0, Wrote: false}, result)
	assert.NoFileExists(t, output)
}

func TestRun_MissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.csv")

	_, err := Run(filepath.Join(t.TempDir(), "missing.csv"), output, NewFilter(nil), zerolog.Nop())

	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestRun_RefilteringOutputIsIdentity(t *testing.T) {
	input := writeTempCSV(t, "Name,Id\nApp-DEV-01,1\nApp-PROD-01,2\nApp-PROD-02,3\n")
	first := filepath.Join(t.TempDir(), "first.csv")
	second := filepath.Join(t.TempDir(), "second.csv")

	_, err := Run(input, first, NewFilter(nil), zerolog.Nop())
	require.NoError(t, err)

	result, err := Run(first, second, NewFilter(nil), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Excluded)

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstData), string(secondData))
}
