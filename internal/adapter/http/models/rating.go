package models

import (
	"errors"
	"strings"
)

type AddRatingRequest struct {
	UserID     string `json:"userId"`
	MovieID    string `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	Stars      int    `json:"stars"`
}

func (r AddRatingRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, "userId is required")
	}
	if strings.TrimSpace(r.MovieID) == "" {
		errs = append(errs, "movieId is required")
	}
	if strings.TrimSpace(r.MovieTitle) == "" {
		errs = append(errs, "movieTitle is required")
	}
	if r.Stars < 1 || r.Stars > 5 {
		errs = append(errs, "stars must be between 1 and 5")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AddRatingResponse struct {
	UserID     string `json:"userId"`
	MovieID    string `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	Stars      int    `json:"stars"`
}

type RecommendationResponse struct {
	UserID     string `json:"userId"`
	MovieID    string `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
}
