package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_Basic(t *testing.T) {
	window, err := Paginate(45, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, window.Offset)
	assert.Equal(t, 10, window.Limit)
	assert.Equal(t, 2, window.CurrentPage)
	assert.Equal(t, 5, window.TotalPages)
}

func TestPaginate_ClampsPageIntoRange(t *testing.T) {
	// Past the last page: clamped down.
	window, err := Paginate(30, 99, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, window.CurrentPage)
	assert.Equal(t, 20, window.Offset)

	// Below the first page: clamped up.
	window, err = Paginate(30, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, window.CurrentPage)
	assert.Equal(t, 0, window.Offset)

	window, err = Paginate(30, -4, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, window.CurrentPage)
}

func TestPaginate_EmptyDataset(t *testing.T) {
	window, err := Paginate(0, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, window.TotalPages)
	assert.Equal(t, 1, window.CurrentPage)
	assert.Equal(t, 0, window.Offset)
}

func TestPaginate_RejectsNonPositivePerPage(t *testing.T) {
	_, err := Paginate(10, 1, 0)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, ErrorCode(err))

	_, err = Paginate(10, 1, -5)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, ErrorCode(err))
}

func TestPaginate_CapsPerPage(t *testing.T) {
	window, err := Paginate(500, 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxPerPage, window.Limit)
	assert.Equal(t, 10, window.TotalPages)
}

// Concatenating every page must reproduce the dataset exactly once.
func TestPaginate_WindowsCoverDatasetExactlyOnce(t *testing.T) {
	for _, tc := range []struct{ total, perPage int }{
		{10, 3}, {9, 3}, {1, 5}, {50, 7}, {100, 50},
	} {
		first, err := Paginate(tc.total, 1, tc.perPage)
		require.NoError(t, err)

		seen := make([]bool, tc.total)
		for page := 1; page <= first.TotalPages; page++ {
			window, err := Paginate(tc.total, page, tc.perPage)
			require.NoError(t, err)
			for i := window.Offset; i < window.Offset+window.Limit && i < tc.total; i++ {
				assert.Falsef(t, seen[i], "record %d served twice (total=%d perPage=%d)", i, tc.total, tc.perPage)
				seen[i] = true
			}
		}
		for i, s := range seen {
			assert.Truef(t, s, "record %d never served (total=%d perPage=%d)", i, tc.total, tc.perPage)
		}
	}
}
