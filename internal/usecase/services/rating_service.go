package services

import (
	"context"
	"strings"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/api-sage/branch-ledger/internal/logger"
	"github.com/api-sage/branch-ledger/internal/usecase/service_interfaces"
)

// Verify that RatingService implements the service_interfaces.RatingService interface
var _ service_interfaces.RatingService = (*RatingService)(nil)

type RatingService struct {
	ratingRepo repo_interfaces.RatingRepository
}

func NewRatingService(ratingRepo repo_interfaces.RatingRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo}
}

// AddRating upserts the user's star rating for a movie. Re-rating a
// movie replaces the previous value; no history is kept.
func (s *RatingService) AddRating(ctx context.Context, req models.AddRatingRequest) (commons.Response[models.AddRatingResponse], error) {
	logger.Info("rating service add rating request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("rating service add rating validation failed", err, nil)
		return commons.ErrorResponse[models.AddRatingResponse]("validation failed", err.Error()), err
	}

	rating := domain.Rating(req.Stars)
	if !rating.Valid() {
		err := commons.ErrInvalidRating
		return commons.ErrorResponse[models.AddRatingResponse]("validation failed", err.Error()), err
	}

	movie := domain.Movie{
		ID:    strings.TrimSpace(req.MovieID),
		Title: strings.TrimSpace(req.MovieTitle),
	}

	if err := s.ratingRepo.AddRating(ctx, strings.TrimSpace(req.UserID), movie, rating); err != nil {
		logger.Error("rating service add rating repository failed", err, nil)
		return commons.ErrorResponse[models.AddRatingResponse]("failed to add rating", "Unable to add rating right now"), err
	}

	response := models.AddRatingResponse{
		UserID:     strings.TrimSpace(req.UserID),
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		Stars:      req.Stars,
	}

	return commons.SuccessResponse("rating added successfully", response), nil
}
