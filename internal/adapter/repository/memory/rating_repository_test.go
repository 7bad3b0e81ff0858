package memory

import (
	"context"
	"testing"

	"github.com/api-sage/branch-ledger/internal/domain"
)

func TestRatingRepositoryAverageRating(t *testing.T) {
	repo := NewRatingRepository()
	matrix := domain.Movie{ID: "matrix", Title: "The Matrix"}

	_ = repo.AddRating(context.Background(), "alice", matrix, domain.RatingFive)
	_ = repo.AddRating(context.Background(), "bob", matrix, domain.RatingFour)

	average, err := repo.AverageRating(context.Background(), "matrix")
	if err != nil {
		t.Fatalf("average rating: %v", err)
	}
	if average != 4.5 {
		t.Fatalf("expected average 4.5, got %v", average)
	}
}

func TestRatingRepositoryReRatingReplacesValue(t *testing.T) {
	repo := NewRatingRepository()
	up := domain.Movie{ID: "up", Title: "Up"}

	_ = repo.AddRating(context.Background(), "alice", up, domain.RatingTwo)
	_ = repo.AddRating(context.Background(), "alice", up, domain.RatingFive)

	ratings, err := repo.MovieRatings(context.Background(), "up")
	if err != nil {
		t.Fatalf("movie ratings: %v", err)
	}
	if ratings["alice"] != domain.RatingFive {
		t.Fatalf("expected replaced rating 5, got %d", ratings["alice"])
	}

	movies, err := repo.UserMovies(context.Background(), "alice")
	if err != nil {
		t.Fatalf("user movies: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected one rated movie after re-rating, got %d", len(movies))
	}
}

func TestRatingRepositoryUnratedMovieAveragesToNotRated(t *testing.T) {
	repo := NewRatingRepository()

	average, err := repo.AverageRating(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("average rating: %v", err)
	}
	if average != 0 {
		t.Fatalf("expected 0 for unrated movie, got %v", average)
	}
}
