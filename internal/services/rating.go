package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/repositories/ratings"
)

type RatingService interface {
	Submit(ctx context.Context, identity *models.Identity, stars int) (models.Rating, error)

	// Stats returns the number of ratings and their mean, 0 when there are none.
	Stats(ctx context.Context) (int, float64)
}

type ratingService struct {
	ratings  ratings.Repository
	sessions SessionRefresher
	now      func() time.Time
	log      logging.Logger
}

func NewRatingService(repo ratings.Repository, sessions SessionRefresher, now func() time.Time, log logging.Logger) RatingService {
	if now == nil {
		now = time.Now
	}
	return &ratingService{ratings: repo, sessions: sessions, now: now, log: log}
}

func (s *ratingService) Submit(ctx context.Context, identity *models.Identity, stars int) (models.Rating, error) {
	if err := requireIdentity(identity); err != nil {
		return models.Rating{}, err
	}

	r := models.Rating{
		UserID:    identity.ID,
		UserName:  identity.Name,
		Stars:     stars,
		Timestamp: s.now().UTC(),
	}
	if err := s.ratings.Append(ctx, r); err != nil {
		return models.Rating{}, err
	}

	if !identity.HasRated {
		identity.HasRated = true
		if err := s.sessions.Refresh(ctx, identity); err != nil {
			s.log.Error(ctx, "failed to refresh session after rating", "identity", identity.ID, "error", err)
		}
	}
	return r, nil
}

func (s *ratingService) Stats(ctx context.Context) (int, float64) {
	list := s.ratings.List(ctx)
	if len(list) == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range list {
		sum += r.Stars
	}
	return len(list), float64(sum) / float64(len(list))
}
