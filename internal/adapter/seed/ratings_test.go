package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/api-sage/branch-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/internal/domain"
)

const sampleRatings = `
ratings:
  - user: alice
    movie: matrix
    title: The Matrix
    stars: 5
  - user: bob
    movie: matrix
    title: The Matrix
    stars: 4
  - user: bob
    movie: up
    title: Up
    stars: 3
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ratings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestLoadRatings(t *testing.T) {
	ratings, err := LoadRatings(writeSeedFile(t, sampleRatings))
	if err != nil {
		t.Fatalf("load ratings: %v", err)
	}
	if len(ratings) != 3 {
		t.Fatalf("expected 3 ratings, got %d", len(ratings))
	}
	if ratings[0].User != "alice" || ratings[0].Stars != 5 {
		t.Fatalf("unexpected first rating: %+v", ratings[0])
	}
}

func TestLoadRatingsRejectsOutOfRangeStars(t *testing.T) {
	bad := `
ratings:
  - user: alice
    movie: matrix
    stars: 6
`
	if _, err := LoadRatings(writeSeedFile(t, bad)); err == nil {
		t.Fatal("expected error for out-of-range stars")
	}
}

func TestApplyRegistersRatings(t *testing.T) {
	ratings, err := LoadRatings(writeSeedFile(t, sampleRatings))
	if err != nil {
		t.Fatalf("load ratings: %v", err)
	}

	repo := memory.NewRatingRepository()
	if err := Apply(context.Background(), repo, ratings); err != nil {
		t.Fatalf("apply ratings: %v", err)
	}

	movieRatings, err := repo.MovieRatings(context.Background(), "matrix")
	if err != nil {
		t.Fatalf("movie ratings: %v", err)
	}
	if movieRatings["alice"] != domain.RatingFive || movieRatings["bob"] != domain.RatingFour {
		t.Fatalf("unexpected matrix ratings: %+v", movieRatings)
	}
}
