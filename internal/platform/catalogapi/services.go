package catalogapi

import (
	"context"
	"fmt"

	"github.com/serviciosmx/catalog-admin/internal/catalog"
)

// ServicesClient maps service operations onto the catalog API. Every
// method is a direct pass-through to the gateway client; no logic is
// added here and all failures propagate unchanged as *APIError.
type ServicesClient struct {
	api *Client
}

// NewServicesClient creates a services resource client over the given
// gateway client.
func NewServicesClient(api *Client) *ServicesClient {
	return &ServicesClient{api: api}
}

// List fetches services matching the given filters and page.
func (s *ServicesClient) List(ctx context.Context, filters catalog.ServiceFilters, page int) (*Page[catalog.Service], error) {
	var result Page[catalog.Service]
	if err := s.api.Get(ctx, "/servicios/", filters.Query(page), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single service by id.
func (s *ServicesClient) Get(ctx context.Context, id int64) (*catalog.Service, error) {
	var svc catalog.Service
	if err := s.api.Get(ctx, fmt.Sprintf("/servicios/%d/", id), nil, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Create creates a new service.
func (s *ServicesClient) Create(ctx context.Context, input catalog.ServiceInput) (*catalog.Service, error) {
	var svc catalog.Service
	if err := s.api.Post(ctx, "/servicios/", input, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update fully replaces a service.
func (s *ServicesClient) Update(ctx context.Context, id int64, input catalog.ServiceInput) (*catalog.Service, error) {
	var svc catalog.Service
	if err := s.api.Put(ctx, fmt.Sprintf("/servicios/%d/", id), input, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Patch partially updates a service with the given fields.
func (s *ServicesClient) Patch(ctx context.Context, id int64, fields map[string]any) (*catalog.Service, error) {
	var svc catalog.Service
	if err := s.api.Patch(ctx, fmt.Sprintf("/servicios/%d/", id), fields, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Delete soft-deletes a service. The API marks the record inactive
// rather than erasing it.
func (s *ServicesClient) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/servicios/%d/", id))
}

// ListRequests fetches the requests submitted for a service.
func (s *ServicesClient) ListRequests(ctx context.Context, id int64) (*Page[catalog.Request], error) {
	var result Page[catalog.Request]
	if err := s.api.Get(ctx, fmt.Sprintf("/servicios/%d/solicitudes/", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateRequest submits a new request for a service.
func (s *ServicesClient) CreateRequest(ctx context.Context, id int64, input catalog.RequestInput) (*catalog.Request, error) {
	var req catalog.Request
	if err := s.api.Post(ctx, fmt.Sprintf("/servicios/%d/solicitudes/", id), input, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
