package repo_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/internal/domain"
)

// RatingRepository registers per-user star ratings and answers the
// aggregate queries the recommender needs.
type RatingRepository interface {
	AddRating(ctx context.Context, userID string, movie domain.Movie, rating domain.Rating) error
	Users(ctx context.Context) ([]string, error)
	Movies(ctx context.Context) ([]domain.Movie, error)
	UserMovies(ctx context.Context, userID string) ([]domain.Movie, error)
	MovieRatings(ctx context.Context, movieID string) (map[string]domain.Rating, error)
	AverageRating(ctx context.Context, movieID string) (float64, error)
}
