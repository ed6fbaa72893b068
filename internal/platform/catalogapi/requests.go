package catalogapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/serviciosmx/catalog-admin/internal/catalog"
)

// RequestsClient maps direct request CRUD onto the catalog API. Like
// ServicesClient it adds no logic of its own.
type RequestsClient struct {
	api *Client
}

// NewRequestsClient creates a requests resource client over the given
// gateway client.
func NewRequestsClient(api *Client) *RequestsClient {
	return &RequestsClient{api: api}
}

// List fetches all requests, optionally constrained by query parameters.
func (r *RequestsClient) List(ctx context.Context, query url.Values) (*Page[catalog.Request], error) {
	var result Page[catalog.Request]
	if err := r.api.Get(ctx, "/solicitudes/", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single request by id.
func (r *RequestsClient) Get(ctx context.Context, id int64) (*catalog.Request, error) {
	var req catalog.Request
	if err := r.api.Get(ctx, fmt.Sprintf("/solicitudes/%d/", id), nil, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Create creates a request not tied to a service-scoped endpoint.
func (r *RequestsClient) Create(ctx context.Context, input catalog.RequestInput) (*catalog.Request, error) {
	var req catalog.Request
	if err := r.api.Post(ctx, "/solicitudes/", input, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Update fully replaces a request.
func (r *RequestsClient) Update(ctx context.Context, id int64, input catalog.RequestInput) (*catalog.Request, error) {
	var req catalog.Request
	if err := r.api.Put(ctx, fmt.Sprintf("/solicitudes/%d/", id), input, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Patch partially updates a request with the given fields.
func (r *RequestsClient) Patch(ctx context.Context, id int64, fields map[string]any) (*catalog.Request, error) {
	var req catalog.Request
	if err := r.api.Patch(ctx, fmt.Sprintf("/solicitudes/%d/", id), fields, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Delete removes a request.
func (r *RequestsClient) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/solicitudes/%d/", id))
}
