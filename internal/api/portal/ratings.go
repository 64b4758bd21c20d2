package portal

import (
	"context"
	"fmt"

	"github.com/travelhub/travel-client/internal/api"
	"github.com/travelhub/travel-client/internal/client"
)

const (
	MinScore = 1
	MaxScore = 5
)

// SubmitRating rates a spot. Scores outside 1-5 are rejected locally.
func (a *API) SubmitRating(ctx context.Context, req RatingRequest) error {
	if req.Score < MinScore || req.Score > MaxScore {
		return fmt.Errorf("score must be between %d and %d, got %d", MinScore, MaxScore, req.Score)
	}
	_, err := a.client.Post(ctx, "/ratings", req)
	return err
}

// UserRating returns the current user's rating of a spot, nil when the user has not rated it
func (a *API) UserRating(ctx context.Context, spotID int64) (*Rating, error) {
	return api.Decode[*Rating](a.client.Get(ctx, api.Path("/ratings/spot/%d", spotID), nil, client.WithoutLoading()))
}

func (a *API) SpotRatings(ctx context.Context, spotID int64, page api.Pagination) (api.Page[Rating], error) {
	q := api.Query{}
	page.Apply(q)
	return api.Decode[api.Page[Rating]](a.client.Get(ctx, api.Path("/ratings/spot/%d/comments", spotID), q.Values()))
}
