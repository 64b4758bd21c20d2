package admin

import (
	"context"

	"github.com/travelhub/travel-client/internal/api"
)

type UserListParams struct {
	api.Pagination
	Nickname string
}

func (a *API) ListUsers(ctx context.Context, p UserListParams) (api.Page[User], error) {
	q := api.Query{}
	p.Apply(q)
	q.Set("nickname", p.Nickname)
	return api.Decode[api.Page[User]](a.client.Get(ctx, "/users", q.Values()))
}

func (a *API) GetUser(ctx context.Context, id int64) (*UserDetail, error) {
	return api.Decode[*UserDetail](a.client.Get(ctx, api.Path("/users/%d", id), nil))
}
