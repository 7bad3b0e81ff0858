package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/api-sage/branch-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/branch-ledger/internal/domain"
	"gopkg.in/yaml.v3"
)

// Rating is one seeded star rating from the seed file.
type Rating struct {
	User  string `yaml:"user"`
	Movie string `yaml:"movie"`
	Title string `yaml:"title"`
	Stars int    `yaml:"stars"`
}

type ratingsFile struct {
	Ratings []Rating `yaml:"ratings"`
}

// LoadRatings parses the YAML ratings seed file.
func LoadRatings(path string) ([]Rating, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ratings seed: %w", err)
	}

	var file ratingsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse ratings seed: %w", err)
	}

	for i, rating := range file.Ratings {
		if strings.TrimSpace(rating.User) == "" || strings.TrimSpace(rating.Movie) == "" {
			return nil, fmt.Errorf("ratings seed entry %d: user and movie are required", i)
		}
		if rating.Stars < 1 || rating.Stars > 5 {
			return nil, fmt.Errorf("ratings seed entry %d: stars must be between 1 and 5", i)
		}
	}

	return file.Ratings, nil
}

// Apply registers the seeded ratings.
func Apply(ctx context.Context, repo repo_interfaces.RatingRepository, ratings []Rating) error {
	for _, rating := range ratings {
		movie := domain.Movie{
			ID:    strings.TrimSpace(rating.Movie),
			Title: strings.TrimSpace(rating.Title),
		}
		if movie.Title == "" {
			movie.Title = movie.ID
		}
		if err := repo.AddRating(ctx, strings.TrimSpace(rating.User), movie, domain.Rating(rating.Stars)); err != nil {
			return err
		}
	}
	return nil
}
