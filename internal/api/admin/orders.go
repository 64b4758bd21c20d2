package admin

import (
	"context"
	"time"

	"github.com/travelhub/travel-client/internal/api"
)

type OrderListParams struct {
	api.Pagination
	OrderNo   string
	SpotName  string
	Status    api.OrderStatus
	StartDate time.Time
	EndDate   time.Time
}

const dateLayout = "2006-01-02"

func (a *API) ListOrders(ctx context.Context, p OrderListParams) (api.Page[Order], error) {
	q := api.Query{}
	p.Apply(q)
	q.Set("orderNo", p.OrderNo)
	q.Set("spotName", p.SpotName)
	q.Set("status", string(p.Status))
	if !p.StartDate.IsZero() {
		q.Set("startDate", p.StartDate.Format(dateLayout))
	}
	if !p.EndDate.IsZero() {
		q.Set("endDate", p.EndDate.Format(dateLayout))
	}
	return api.Decode[api.Page[Order]](a.client.Get(ctx, "/orders", q.Values()))
}

func (a *API) GetOrder(ctx context.Context, id int64) (*Order, error) {
	return api.Decode[*Order](a.client.Get(ctx, api.Path("/orders/%d", id), nil))
}

// CompleteOrder marks a paid order as used and returns the updated order
func (a *API) CompleteOrder(ctx context.Context, id int64) (*Order, error) {
	return api.Decode[*Order](a.client.Post(ctx, api.Path("/orders/%d/complete", id), nil))
}

func (a *API) RefundOrder(ctx context.Context, id int64) (*Order, error) {
	return api.Decode[*Order](a.client.Post(ctx, api.Path("/orders/%d/refund", id), nil))
}
