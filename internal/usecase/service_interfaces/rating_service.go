package service_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
)

type RatingService interface {
	AddRating(ctx context.Context, req models.AddRatingRequest) (commons.Response[models.AddRatingResponse], error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, userID string) (commons.Response[models.RecommendationResponse], error)
}
