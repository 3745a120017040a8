package endnotes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsledger/pickboard/internal/domain"
)

type mapFetcher struct {
	notes map[int64]domain.Endnote
	calls [][]int64
	err   error
}

func (f *mapFetcher) GetEndnotesByIDs(_ context.Context, ids []int64) ([]domain.Endnote, error) {
	f.calls = append(f.calls, append([]int64{}, ids...))
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Endnote
	for _, id := range ids {
		if n, ok := f.notes[id]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func note(id int64, deps ...int64) domain.Endnote {
	return domain.Endnote{EndnoteID: id, DependsOnEndnotes: deps}
}

func ids(notes []domain.Endnote) []int64 {
	out := make([]int64, len(notes))
	for i, n := range notes {
		out[i] = n.EndnoteID
	}
	return out
}

func TestResolve_MissingRefs(t *testing.T) {
	f := &mapFetcher{notes: map[int64]domain.Endnote{1: note(1), 3: note(3)}}

	res, err := Resolve(context.Background(), f, []int64{3, 1, 2, 3}, DefaultMaxDepth)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(res.Endnotes))
	assert.Equal(t, []int64{2}, res.Missing)
	assert.Empty(t, res.Dependencies)
	assert.Len(t, f.calls, 1)
	assert.Equal(t, []int64{1, 2, 3}, f.calls[0])
}

func TestResolve_FollowsChainsBreadthFirst(t *testing.T) {
	f := &mapFetcher{notes: map[int64]domain.Endnote{
		10: note(10, 20, 30),
		20: note(20, 40),
		30: note(30, 10), // cycle back to the root
		40: note(40, 99),
	}}

	res, err := Resolve(context.Background(), f, []int64{10}, DefaultMaxDepth)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, ids(res.Endnotes))
	assert.Equal(t, []int64{20, 30, 40}, ids(res.Dependencies))
	assert.Equal(t, []int64{99}, res.MissingDependencies)
	assert.Empty(t, res.Missing)
}

func TestResolve_DepthBound(t *testing.T) {
	f := &mapFetcher{notes: map[int64]domain.Endnote{
		1: note(1, 2),
		2: note(2, 3),
		3: note(3, 4),
		4: note(4),
	}}

	res, err := Resolve(context.Background(), f, []int64{1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(res.Dependencies))
	assert.Len(t, f.calls, 2)

	f.calls = nil
	res, err = Resolve(context.Background(), f, []int64{1}, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Dependencies)
	assert.Len(t, f.calls, 1)
}

func TestResolve_Empty(t *testing.T) {
	f := &mapFetcher{}
	res, err := Resolve(context.Background(), f, nil, DefaultMaxDepth)
	require.NoError(t, err)
	assert.NotNil(t, res.Endnotes)
	assert.NotNil(t, res.Missing)
	assert.Empty(t, f.calls)
}

func TestResolve_FetchError(t *testing.T) {
	f := &mapFetcher{err: errors.New("connection refused")}
	_, err := Resolve(context.Background(), f, []int64{1}, DefaultMaxDepth)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMissingRefs(t *testing.T) {
	assert.Equal(t, []int64{2, 5}, MissingRefs([]int64{5, 1, 2, 2}, []domain.Endnote{note(1)}))
	assert.Equal(t, []int64{}, MissingRefs(nil, nil))
}
