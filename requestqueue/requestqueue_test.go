package requestqueue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard/tfengine"
)

func newTestEngine(t *testing.T) *tfengine.Engine {
	t.Helper()
	e, err := tfengine.NewEngine("")
	require.NoError(t, err)
	require.NoError(t, e.AddDocument(1, "cat dog", tfengine.ACTUAL, nil))
	return e
}

func TestNewRequestQueue_DefaultWindowSize(t *testing.T) {
	q := NewRequestQueue(newTestEngine(t), 0)
	require.Equal(t, DefaultWindowSize, q.windowSize)
}

func TestAddFindRequest_ReturnsEngineResults(t *testing.T) {
	q := NewRequestQueue(newTestEngine(t), 10)
	results, err := q.AddFindRequest("cat", tfengine.ACTUAL)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 1, results[0].ID)
}

func TestAddFindRequest_CountsEmptyQueries(t *testing.T) {
	q := NewRequestQueue(newTestEngine(t), 10)

	_, err := q.AddFindRequest("bird", tfengine.ACTUAL) // no match
	require.NoError(t, err)
	require.Equal(t, 1, q.EmptyRequestCount())

	_, err = q.AddFindRequest("cat", tfengine.ACTUAL) // one match
	require.NoError(t, err)
	require.Equal(t, 1, q.EmptyRequestCount())
}

func TestAddFindRequest_EvictsOutsideWindow(t *testing.T) {
	q := NewRequestQueue(newTestEngine(t), 2)

	_, err := q.AddFindRequest("bird", tfengine.ACTUAL) // tick 1, empty
	require.NoError(t, err)
	require.Equal(t, 1, q.EmptyRequestCount())

	_, err = q.AddFindRequest("cat", tfengine.ACTUAL) // tick 2, non-empty
	require.NoError(t, err)
	_, err = q.AddFindRequest("cat", tfengine.ACTUAL) // tick 3, evicts tick 1
	require.NoError(t, err)

	require.Equal(t, 0, q.EmptyRequestCount())
}

func TestAddFindRequest_PropagatesQueryError(t *testing.T) {
	q := NewRequestQueue(newTestEngine(t), 10)
	_, err := q.AddFindRequest("--broken", tfengine.ACTUAL)
	require.Error(t, err)
}
