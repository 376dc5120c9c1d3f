package book

import (
	"context"
	"testing"

	"github.com/bookclub/bookclub-api/internal/repository"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newTestBook(t *testing.T, s *MemoryStore) Book {
	t.Helper()
	b, err := s.Insert(ctx, CreateRequest{
		Title:       "Dune",
		Author:      "Frank Herbert",
		Description: "Spice and sand.",
		PageCount:   412,
		PitchBy:     "carol",
	})
	require.NoError(t, err)
	return b
}

func TestInsertGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	created := newTestBook(t, s)
	require.NotEmpty(t, created.ID)
	require.False(t, created.FirstSuggested.IsZero())
	require.Empty(t, created.Supporters)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestUpdateTouchesOnlyNamedFields(t *testing.T) {
	s := NewMemoryStore()
	created := newTestBook(t, s)

	updated, err := s.Update(ctx, created.ID, UpdateRequest{Author: strptr("F. Herbert")})
	require.NoError(t, err)
	require.Equal(t, "Dune", updated.Title)
	require.Equal(t, "F. Herbert", updated.Author)
	require.Equal(t, 412, updated.PageCount)

	// change persisted
	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestEmptyUpdateReturnsUnchanged(t *testing.T) {
	s := NewMemoryStore()
	created := newTestBook(t, s)

	got, err := s.Update(ctx, created.ID, UpdateRequest{})
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestEmptyUpdateStillChecksExistence(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Update(ctx, "68b1c2d3e4f5a6b7c8d9e0f1", UpdateRequest{})

	var repoErr *repository.Error
	require.ErrorAs(t, err, &repoErr)
	require.Equal(t, repository.KindNotFound, repoErr.Kind)
}

func TestVoteIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	created := newTestBook(t, s)

	first, err := s.Vote(ctx, created.ID, "alice")
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, first.Supporters)

	second, err := s.Vote(ctx, created.ID, "alice")
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, second.Supporters)

	third, err := s.Vote(ctx, created.ID, "bob")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"alice", "bob"}, third.Supporters)
}

func TestVoteMissingBook(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Vote(ctx, "68b1c2d3e4f5a6b7c8d9e0f1", "alice")

	var repoErr *repository.Error
	require.ErrorAs(t, err, &repoErr)
	require.Equal(t, repository.KindNotFound, repoErr.Kind)
}

func TestInvalidIDDistinctFromNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(ctx, "not-a-valid-id")

	var repoErr *repository.Error
	require.ErrorAs(t, err, &repoErr)
	require.Equal(t, repository.KindInvalidID, repoErr.Kind)
}

func TestSequentialUpdatesBothApply(t *testing.T) {
	s := NewMemoryStore()
	created := newTestBook(t, s)

	_, err := s.Update(ctx, created.ID, UpdateRequest{Title: strptr("Dune Messiah")})
	require.NoError(t, err)
	_, err = s.Update(ctx, created.ID, UpdateRequest{Author: strptr("F. Herbert")})
	require.NoError(t, err)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Dune Messiah", got.Title)
	require.Equal(t, "F. Herbert", got.Author)
}

func TestDeleteThenGet(t *testing.T) {
	s := NewMemoryStore()
	created := newTestBook(t, s)

	require.NoError(t, s.Delete(ctx, created.ID))

	_, err := s.Get(ctx, created.ID)
	var repoErr *repository.Error
	require.ErrorAs(t, err, &repoErr)
	require.Equal(t, repository.KindNotFound, repoErr.Kind)

	// deleting again is not an error
	require.NoError(t, s.Delete(ctx, created.ID))
}

func TestListSortedByPopularity(t *testing.T) {
	s := NewMemoryStore()
	quiet := newTestBook(t, s)
	popular := newTestBook(t, s)
	_, err := s.Vote(ctx, popular.ID, "alice")
	require.NoError(t, err)

	books, err := s.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, popular.ID, books[0].ID)
	require.Equal(t, quiet.ID, books[1].ID)
}
