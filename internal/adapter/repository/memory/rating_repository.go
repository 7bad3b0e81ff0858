package memory

import (
	"context"
	"sync"

	"github.com/api-sage/branch-ledger/internal/domain"
)

// RatingRepository is the in-memory rating register. Users and movies
// are kept in first-seen order so recommendation tie-breaks stay stable.
type RatingRepository struct {
	mu           sync.Mutex
	users        []string
	movies       []domain.Movie
	userMovies   map[string][]string
	movieRatings map[string]map[string]domain.Rating
	movieByID    map[string]domain.Movie
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{
		userMovies:   make(map[string][]string),
		movieRatings: make(map[string]map[string]domain.Rating),
		movieByID:    make(map[string]domain.Movie),
	}
}

func (r *RatingRepository) AddRating(_ context.Context, userID string, movie domain.Movie, rating domain.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movieRatings[movie.ID]; !ok {
		r.movieRatings[movie.ID] = make(map[string]domain.Rating)
		r.movieByID[movie.ID] = movie
		r.movies = append(r.movies, movie)
	}

	if _, ok := r.userMovies[userID]; !ok {
		r.users = append(r.users, userID)
	}

	if _, rated := r.movieRatings[movie.ID][userID]; !rated {
		r.userMovies[userID] = append(r.userMovies[userID], movie.ID)
	}
	r.movieRatings[movie.ID][userID] = rating

	return nil
}

func (r *RatingRepository) Users(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *RatingRepository) Movies(_ context.Context) ([]domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Movie, len(r.movies))
	copy(out, r.movies)
	return out, nil
}

func (r *RatingRepository) UserMovies(_ context.Context, userID string) ([]domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.userMovies[userID]
	out := make([]domain.Movie, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.movieByID[id])
	}
	return out, nil
}

func (r *RatingRepository) MovieRatings(_ context.Context, movieID string) (map[string]domain.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ratings := r.movieRatings[movieID]
	out := make(map[string]domain.Rating, len(ratings))
	for user, rating := range ratings {
		out[user] = rating
	}
	return out, nil
}

func (r *RatingRepository) AverageRating(_ context.Context, movieID string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ratings := r.movieRatings[movieID]
	if len(ratings) == 0 {
		return float64(domain.RatingNotRated), nil
	}

	sum := 0
	for _, rating := range ratings {
		sum += int(rating)
	}
	return float64(sum) / float64(len(ratings)), nil
}
