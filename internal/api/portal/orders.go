package portal

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/travelhub/travel-client/internal/api"
	"github.com/travelhub/travel-client/internal/client"
)

// CreateOrder places an order. When req.IdempotentKey is empty a random key is generated so that a resubmitted
// form cannot create a second order.
func (a *API) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error) {
	if req.IdempotentKey == "" {
		req.IdempotentKey = uuid.NewString()
	}
	return api.Decode[*OrderDetail](a.client.Post(ctx, "/orders", req))
}

type OrderListParams struct {
	api.Pagination
	Status api.OrderStatus
}

func (a *API) ListOrders(ctx context.Context, p OrderListParams) (api.Page[Order], error) {
	q := api.Query{}
	p.Apply(q)
	q.Set("status", string(p.Status))
	return api.Decode[api.Page[Order]](a.client.Get(ctx, "/orders", q.Values()))
}

func (a *API) OrderDetail(ctx context.Context, id int64) (*OrderDetail, error) {
	return api.Decode[*OrderDetail](a.client.Get(ctx, api.Path("/orders/%d", id), nil))
}

// PayOrder pays an order. idempotentKey is generated when empty; pass the same key when retrying a payment.
func (a *API) PayOrder(ctx context.Context, id int64, idempotentKey string) (*OrderDetail, error) {
	if idempotentKey == "" {
		idempotentKey = uuid.NewString()
	}
	q := url.Values{"idempotentKey": {idempotentKey}}
	return api.Decode[*OrderDetail](a.client.Post(ctx, api.Path("/orders/%d/pay", id), nil, client.WithQuery(q)))
}

func (a *API) CancelOrder(ctx context.Context, id int64) (*OrderDetail, error) {
	return api.Decode[*OrderDetail](a.client.Post(ctx, api.Path("/orders/%d/cancel", id), nil))
}
