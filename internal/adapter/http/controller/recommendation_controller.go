package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
)

type RatingService interface {
	AddRating(ctx context.Context, req models.AddRatingRequest) (commons.Response[models.AddRatingResponse], error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, userID string) (commons.Response[models.RecommendationResponse], error)
}

type RecommendationController struct {
	ratings        RatingService
	recommendation RecommendationService
}

func NewRecommendationController(ratings RatingService, recommendation RecommendationService) *RecommendationController {
	return &RecommendationController{ratings: ratings, recommendation: recommendation}
}

func (c *RecommendationController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	addRating := http.Handler(http.HandlerFunc(c.addRating))
	recommend := http.Handler(http.HandlerFunc(c.recommend))
	if authMiddleware != nil {
		addRating = authMiddleware(addRating)
		recommend = authMiddleware(recommend)
	}
	mux.Handle("/ratings", addRating)
	mux.Handle("/recommendations", recommend)
}

func (c *RecommendationController) addRating(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AddRatingResponse]("method not allowed"))
		return
	}

	var req models.AddRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AddRatingResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.ratings.AddRating(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *RecommendationController) recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.RecommendationResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	response, err := c.recommendation.Recommend(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
