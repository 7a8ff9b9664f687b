package csv

import (
	"context"
	"testing"

	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestWriteRow(t *testing.T) {
	type testCase struct {
		name     string
		config   *models.CSVConfig
		rows     []*models.NamedNumber
		expected string
	}

	rows := []*models.NamedNumber{
		{Number: 21, Words: "vingt-et-un"},
		{Number: -1, Words: "moins-un"},
	}

	testCases := []testCase{
		{
			name:     "Default config",
			config:   &models.CSVConfig{},
			rows:     rows,
			expected: "number,words\n21,vingt-et-un\n-1,moins-un\n",
		},
		{
			name:     "Semicolon without headers",
			config:   &models.CSVConfig{Delimiter: ";", WithoutHeaders: true},
			rows:     rows,
			expected: "21;vingt-et-un\n-1;moins-un\n",
		},
		{
			name:     "Words with delimiter are quoted",
			config:   &models.CSVConfig{Delimiter: "-"},
			rows:     []*models.NamedNumber{{Number: 17, Words: "dix-sept"}},
			expected: "number-words\n17-\"dix-sept\"\n",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		tc.config.FillDefaults()
		require.Empty(t, tc.config.Validate())

		fs := afero.NewMemMapFs()
		writtenRowsChan := make(chan uint64, len(tc.rows)+1)

		w := NewWriter(context.Background(), fs, "standard", tc.config, "out", writtenRowsChan)
		require.NoError(t, w.Init())

		for _, row := range tc.rows {
			require.NoError(t, w.WriteRow(row))
		}

		require.NoError(t, w.Teardown())
		close(writtenRowsChan)

		var written uint64
		for count := range writtenRowsChan {
			written += count
		}

		require.Equal(t, uint64(len(tc.rows)), written)

		data, err := afero.ReadFile(fs, FileName("out", "standard"))
		require.NoError(t, err)
		require.Equal(t, tc.expected, string(data))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestWriteRowCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := &models.CSVConfig{}
	cfg.FillDefaults()

	w := NewWriter(ctx, afero.NewMemMapFs(), "belgian", cfg, "out", nil)
	require.NoError(t, w.Init())

	cancel()
	w.writerWg.Wait()

	require.Error(t, w.WriteRow(&models.NamedNumber{Number: 1, Words: "un"}))
	require.NoError(t, w.Teardown())
}
