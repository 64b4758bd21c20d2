package portal

import (
	"context"

	"github.com/travelhub/travel-client/internal/api"
	"github.com/travelhub/travel-client/internal/client"
)

func (a *API) AddFavorite(ctx context.Context, spotID int64) error {
	_, err := a.client.Post(ctx, "/favorites", map[string]int64{"spotId": spotID})
	return err
}

func (a *API) RemoveFavorite(ctx context.Context, spotID int64) error {
	_, err := a.client.Delete(ctx, api.Path("/favorites/%d", spotID))
	return err
}

func (a *API) Favorites(ctx context.Context, page api.Pagination) (api.Page[Spot], error) {
	q := api.Query{}
	page.Apply(q)
	return api.Decode[api.Page[Spot]](a.client.Get(ctx, "/favorites", q.Values()))
}

func (a *API) IsFavorite(ctx context.Context, spotID int64) (bool, error) {
	res, err := api.Decode[struct {
		IsFavorite bool `json:"isFavorite"`
	}](a.client.Get(ctx, api.Path("/favorites/check/%d", spotID), nil, client.WithoutLoading()))
	return res.IsFavorite, err
}
