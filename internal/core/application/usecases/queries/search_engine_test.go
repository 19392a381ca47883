package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearcher serves a fixed in-memory result set and counts calls.
type fakeSearcher struct {
	items      []int
	countCalls int
}

func (f *fakeSearcher) CountResults(context.Context) (int, error) {
	f.countCalls++
	return len(f.items), nil
}

func (f *fakeSearcher) FindResults(_ context.Context, offset, limit int) ([]int, error) {
	if limit <= 0 {
		return f.items, nil
	}
	if offset > len(f.items) {
		return nil, nil
	}
	to := offset + limit
	if to > len(f.items) {
		to = len(f.items)
	}
	return f.items[offset:to], nil
}

func (f *fakeSearcher) AggregateResults(context.Context, int, int) ([]int, error) {
	return nil, errs.NewQueryUnsupportedError("fakeSearcher", "AggregateResults")
}

func TestSearchEngine_GetResults(t *testing.T) {
	ctx := t.Context()
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("pages through the result set", func(t *testing.T) {
		engine := queries.NewSearchEngine[int](&fakeSearcher{items: items}, 2, 3)

		results, err := engine.GetResults(ctx)

		require.NoError(t, err)
		assert.Equal(t, []int{4, 5, 6}, results)
	})

	t.Run("disabled pagination returns everything", func(t *testing.T) {
		engine := queries.NewSearchEngine[int](&fakeSearcher{items: items}, -1, 3)

		results, err := engine.GetResults(ctx)

		require.NoError(t, err)
		assert.Equal(t, items, results)
	})
}

func TestSearchEngine_GetPagination(t *testing.T) {
	ctx := t.Context()

	t.Run("nil when disabled", func(t *testing.T) {
		engine := queries.NewSearchEngine[int](&fakeSearcher{}, -1, 3)

		p, err := engine.GetPagination(ctx)

		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("counts once and caches", func(t *testing.T) {
		searcher := &fakeSearcher{items: []int{1, 2, 3, 4}}
		engine := queries.NewSearchEngine[int](searcher, 1, 3)

		first, err := engine.GetPagination(ctx)
		require.NoError(t, err)
		second, err := engine.GetPagination(ctx)
		require.NoError(t, err)
		_, err = engine.GetResults(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, searcher.countCalls)
		assert.Equal(t, 4, first.TotalResults())
		assert.Equal(t, 2, first.Pages())
	})
}

func TestSearchEngine_AggregateResults_Unsupported(t *testing.T) {
	engine := queries.NewSearchEngine[int](&fakeSearcher{items: []int{1}}, 1, 3)

	_, err := engine.AggregateResults(t.Context())

	require.ErrorIs(t, err, errs.ErrQueryUnsupported)
}
