package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/api-sage/branch-ledger/internal/logger"
	"github.com/api-sage/branch-ledger/internal/usecase/service_interfaces"
)

// Verify that RecommendationService implements the service_interfaces.RecommendationService interface
var _ service_interfaces.RecommendationService = (*RecommendationService)(nil)

// RecommendationService picks one movie for a user. A user with no
// ratings gets the highest-averaged movie overall; otherwise reviewers
// are ranked by similarity (sum of absolute rating differences over
// commonly rated movies, lower is closer) and the closest reviewer's
// best movie the user has not rated wins.
type RecommendationService struct {
	ratingRepo repo_interfaces.RatingRepository
}

func NewRecommendationService(ratingRepo repo_interfaces.RatingRepository) *RecommendationService {
	return &RecommendationService{ratingRepo: ratingRepo}
}

func (s *RecommendationService) Recommend(ctx context.Context, userID string) (commons.Response[models.RecommendationResponse], error) {
	logger.Info("recommendation service recommend request", logger.Fields{
		"userId": userID,
	})

	userID = strings.TrimSpace(userID)
	if userID == "" {
		err := fmt.Errorf("userId is required")
		return commons.ErrorResponse[models.RecommendationResponse]("validation failed", err.Error()), err
	}

	userMovies, err := s.ratingRepo.UserMovies(ctx, userID)
	if err != nil {
		logger.Error("recommendation service user movies lookup failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.RecommendationResponse]("failed to recommend movie", "Unable to recommend a movie right now"), err
	}

	var movie domain.Movie
	if len(userMovies) == 0 {
		movie, err = s.recommendForNewUser(ctx)
	} else {
		movie, err = s.recommendForExistingUser(ctx, userID, userMovies)
	}
	if err != nil {
		if errors.Is(err, commons.ErrNoRecommendation) {
			logger.Info("recommendation service no candidate movie", logger.Fields{
				"userId": userID,
			})
			return commons.ErrorResponse[models.RecommendationResponse]("No movie to recommend"), err
		}
		logger.Error("recommendation service recommend failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.RecommendationResponse]("failed to recommend movie", "Unable to recommend a movie right now"), err
	}

	response := models.RecommendationResponse{
		UserID:     userID,
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
	}

	logger.Info("recommendation service recommend success", logger.Fields{
		"userId":     userID,
		"movieTitle": movie.Title,
	})

	return commons.SuccessResponse("movie recommended successfully", response), nil
}

// recommendForNewUser returns the movie with the highest average rating
// across all users. Ties keep the first movie registered.
func (s *RecommendationService) recommendForNewUser(ctx context.Context) (domain.Movie, error) {
	movies, err := s.ratingRepo.Movies(ctx)
	if err != nil {
		return domain.Movie{}, err
	}
	if len(movies) == 0 {
		return domain.Movie{}, commons.ErrNoRecommendation
	}

	best := movies[0]
	bestAverage, err := s.ratingRepo.AverageRating(ctx, best.ID)
	if err != nil {
		return domain.Movie{}, err
	}

	for _, movie := range movies[1:] {
		average, err := s.ratingRepo.AverageRating(ctx, movie.ID)
		if err != nil {
			return domain.Movie{}, err
		}
		if average > bestAverage {
			best = movie
			bestAverage = average
		}
	}

	return best, nil
}

type reviewerMatch struct {
	userID     string
	score      int
	hasOverlap bool
}

func (s *RecommendationService) recommendForExistingUser(ctx context.Context, userID string, userMovies []domain.Movie) (domain.Movie, error) {
	rated := make(map[string]struct{}, len(userMovies))
	for _, movie := range userMovies {
		rated[movie.ID] = struct{}{}
	}

	users, err := s.ratingRepo.Users(ctx)
	if err != nil {
		return domain.Movie{}, err
	}

	matches := make([]reviewerMatch, 0, len(users))
	for _, reviewer := range users {
		if reviewer == userID {
			continue
		}
		score, overlap, err := s.similarity(ctx, userID, reviewer, rated)
		if err != nil {
			return domain.Movie{}, err
		}
		matches = append(matches, reviewerMatch{userID: reviewer, score: score, hasOverlap: overlap})
	}

	// Closest reviewers first; reviewers with no commonly rated movie
	// rank last. The stable sort keeps registration order on ties.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].hasOverlap != matches[j].hasOverlap {
			return matches[i].hasOverlap
		}
		return matches[i].score < matches[j].score
	})

	for _, match := range matches {
		movie, found, err := s.bestUnwatched(ctx, match.userID, rated)
		if err != nil {
			return domain.Movie{}, err
		}
		if found {
			return movie, nil
		}
	}

	return domain.Movie{}, commons.ErrNoRecommendation
}

// similarity sums the absolute rating difference over movies both users
// rated. Lower means more alike.
func (s *RecommendationService) similarity(ctx context.Context, userID, reviewerID string, rated map[string]struct{}) (int, bool, error) {
	reviewerMovies, err := s.ratingRepo.UserMovies(ctx, reviewerID)
	if err != nil {
		return 0, false, err
	}

	score := 0
	overlap := false
	for _, movie := range reviewerMovies {
		if _, ok := rated[movie.ID]; !ok {
			continue
		}
		ratings, err := s.ratingRepo.MovieRatings(ctx, movie.ID)
		if err != nil {
			return 0, false, err
		}
		overlap = true
		diff := int(ratings[userID]) - int(ratings[reviewerID])
		if diff < 0 {
			diff = -diff
		}
		score += diff
	}

	return score, overlap, nil
}

// bestUnwatched returns the reviewer's highest-rated movie the user has
// not rated yet.
func (s *RecommendationService) bestUnwatched(ctx context.Context, reviewerID string, rated map[string]struct{}) (domain.Movie, bool, error) {
	reviewerMovies, err := s.ratingRepo.UserMovies(ctx, reviewerID)
	if err != nil {
		return domain.Movie{}, false, err
	}

	var best domain.Movie
	bestRating := domain.RatingNotRated
	found := false
	for _, movie := range reviewerMovies {
		if _, ok := rated[movie.ID]; ok {
			continue
		}
		ratings, err := s.ratingRepo.MovieRatings(ctx, movie.ID)
		if err != nil {
			return domain.Movie{}, false, err
		}
		if ratings[reviewerID] > bestRating {
			best = movie
			bestRating = ratings[reviewerID]
			found = true
		}
	}

	return best, found, nil
}
