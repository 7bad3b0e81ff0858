package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/branch-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/api-sage/branch-ledger/internal/usecase/services"
)

func addRating(t *testing.T, repo *memory.RatingRepository, user, movieID, title string, stars int) {
	t.Helper()

	err := repo.AddRating(context.Background(), user, domain.Movie{ID: movieID, Title: title}, domain.Rating(stars))
	if err != nil {
		t.Fatalf("add rating: %v", err)
	}
}

func TestRecommendNewUserGetsHighestAveragedMovie(t *testing.T) {
	repo := memory.NewRatingRepository()
	addRating(t, repo, "alice", "matrix", "Matrix", 5)
	addRating(t, repo, "bob", "matrix", "Matrix", 4)
	addRating(t, repo, "bob", "up", "Up", 3)

	svc := services.NewRecommendationService(repo)

	resp, err := svc.Recommend(context.Background(), "newcomer")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if resp.Data.MovieTitle != "Matrix" {
		t.Fatalf("expected Matrix for a new user, got %q", resp.Data.MovieTitle)
	}
}

func TestRecommendExistingUserFollowsClosestReviewer(t *testing.T) {
	repo := memory.NewRatingRepository()
	addRating(t, repo, "alice", "inception", "Inception", 5)
	addRating(t, repo, "alice", "titanic", "Titanic", 2)
	addRating(t, repo, "bob", "titanic", "Titanic", 3)
	addRating(t, repo, "bob", "matrix", "The Matrix", 4)

	svc := services.NewRecommendationService(repo)

	// Bob is Alice's only reviewer with overlap; his best unseen movie wins.
	resp, err := svc.Recommend(context.Background(), "alice")
	if err != nil {
		t.Fatalf("recommend for alice: %v", err)
	}
	if resp.Data.MovieTitle != "The Matrix" {
		t.Fatalf("expected The Matrix for alice, got %q", resp.Data.MovieTitle)
	}

	resp, err = svc.Recommend(context.Background(), "bob")
	if err != nil {
		t.Fatalf("recommend for bob: %v", err)
	}
	if resp.Data.MovieTitle != "Inception" {
		t.Fatalf("expected Inception for bob, got %q", resp.Data.MovieTitle)
	}
}

func TestRecommendPrefersMoreSimilarReviewer(t *testing.T) {
	repo := memory.NewRatingRepository()
	addRating(t, repo, "alice", "matrix", "The Matrix", 5)
	// Bob disagrees with Alice, Carol agrees with her.
	addRating(t, repo, "bob", "matrix", "The Matrix", 1)
	addRating(t, repo, "bob", "up", "Up", 5)
	addRating(t, repo, "carol", "matrix", "The Matrix", 5)
	addRating(t, repo, "carol", "inception", "Inception", 4)

	svc := services.NewRecommendationService(repo)

	resp, err := svc.Recommend(context.Background(), "alice")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if resp.Data.MovieTitle != "Inception" {
		t.Fatalf("expected Inception from the closer reviewer, got %q", resp.Data.MovieTitle)
	}
}

func TestRecommendNoCandidateMovie(t *testing.T) {
	repo := memory.NewRatingRepository()
	addRating(t, repo, "alice", "matrix", "The Matrix", 5)

	svc := services.NewRecommendationService(repo)

	// Alice is the only rater, so nobody can point her anywhere new.
	_, err := svc.Recommend(context.Background(), "alice")
	if !errors.Is(err, commons.ErrNoRecommendation) {
		t.Fatalf("expected ErrNoRecommendation, got %v", err)
	}
}

func TestRecommendNewUserWithEmptyRegister(t *testing.T) {
	svc := services.NewRecommendationService(memory.NewRatingRepository())

	_, err := svc.Recommend(context.Background(), "anyone")
	if !errors.Is(err, commons.ErrNoRecommendation) {
		t.Fatalf("expected ErrNoRecommendation, got %v", err)
	}
}

func TestRecommendMissingUserIDValidationError(t *testing.T) {
	svc := services.NewRecommendationService(memory.NewRatingRepository())

	_, err := svc.Recommend(context.Background(), "  ")
	if err == nil {
		t.Fatal("expected validation error for blank userId")
	}
}
