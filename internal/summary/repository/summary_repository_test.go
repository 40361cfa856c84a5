package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linkfeed-backend/internal/summary/domain"
)

func TestMemoryRepository_WholeListSemantics(t *testing.T) {
	repo := NewMemorySummaryRepository()

	list, err := repo.GetSummaries("user-1")
	assert.NoError(t, err)
	assert.Empty(t, list)

	first := []domain.FeedSummary{{ID: "a", UserID: "user-1"}, {ID: "b", UserID: "user-1"}}
	assert.NoError(t, repo.PutSummaries("user-1", first))

	got, err := repo.GetSummaries("user-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(got))

	// Put replaces the whole collection, it does not merge.
	second := []domain.FeedSummary{{ID: "c", UserID: "user-1"}}
	assert.NoError(t, repo.PutSummaries("user-1", second))

	got, err = repo.GetSummaries("user-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(got))
}

func TestMemoryRepository_UsersAreIsolated(t *testing.T) {
	repo := NewMemorySummaryRepository()

	assert.NoError(t, repo.PutSummaries("user-1", []domain.FeedSummary{{ID: "a", UserID: "user-1"}}))
	assert.NoError(t, repo.PutSummaries("user-2", []domain.FeedSummary{{ID: "b", UserID: "user-2"}}))

	one, _ := repo.GetSummaries("user-1")
	two, _ := repo.GetSummaries("user-2")
	assert.Equal(t, []string{"a"}, ids(one))
	assert.Equal(t, []string{"b"}, ids(two))
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemorySummaryRepository()
	assert.NoError(t, repo.PutSummaries("user-1", []domain.FeedSummary{{ID: "a", UserID: "user-1"}}))

	got, _ := repo.GetSummaries("user-1")
	got[0].ID = "mutated"

	fresh, _ := repo.GetSummaries("user-1")
	assert.Equal(t, "a", fresh[0].ID)
}

func ids(list []domain.FeedSummary) []string {
	out := make([]string, 0, len(list))
	for _, rec := range list {
		out = append(out, rec.ID)
	}
	return out
}
