// Package api holds the pieces shared by the admin and portal endpoint wrappers.
package api

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Page is the paginated list shape returned by list endpoints
type Page[T any] struct {
	List       []T   `json:"list"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages,omitempty"`
}

// List is the unpaginated {"list": [...]} shape
type List[T any] struct {
	List []T `json:"list"`
}

// Decode unmarshals the data returned by a client call into T.
// It is meant to wrap the call directly: Decode[Spot](c.Get(ctx, path, nil)).
// A call that succeeded without data yields the zero value of T.
func Decode[T any](data json.RawMessage, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	if data == nil {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decoding %T: %w", v, err)
	}
	return v, nil
}

// Pagination is embedded in list parameters. Zero values are omitted so the server defaults apply.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Apply(q Query) {
	q.Int("page", p.Page)
	q.Int("pageSize", p.PageSize)
}

// Query builds url.Values, skipping empty values
type Query url.Values

func (q Query) Set(key, value string) {
	if value != "" {
		url.Values(q).Set(key, value)
	}
}

func (q Query) Int(key string, value int) {
	if value != 0 {
		url.Values(q).Set(key, strconv.Itoa(value))
	}
}

func (q Query) ID(key string, value int64) {
	if value != 0 {
		url.Values(q).Set(key, strconv.FormatInt(value, 10))
	}
}

// IntPtr sets key when value is non-nil, including zero (used for 0/1 flags)
func (q Query) IntPtr(key string, value *int) {
	if value != nil {
		url.Values(q).Set(key, strconv.Itoa(*value))
	}
}

func (q Query) Values() url.Values {
	return url.Values(q)
}

// Path formats a resource path with an id, e.g. Path("/spots/%d", 3)
func Path(format string, id int64) string {
	return fmt.Sprintf(format, id)
}

// Created is the {"id": n} body returned by create endpoints
type Created struct {
	ID int64 `json:"id"`
}
