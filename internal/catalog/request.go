package catalog

import "time"

// RequestStatus tracks the lifecycle of a service request. Wire values
// match the remote API's Spanish status codes.
type RequestStatus string

const (
	StatusNew        RequestStatus = "nuevo"
	StatusInProgress RequestStatus = "en_proceso"
	StatusClosed     RequestStatus = "cerrado"
)

// RequestStatuses returns every status in lifecycle order.
func RequestStatuses() []RequestStatus {
	return []RequestStatus{StatusNew, StatusInProgress, StatusClosed}
}

// IsValid reports whether the status is one of the known values.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Label returns the human-readable Spanish label for the status.
func (s RequestStatus) Label() string {
	switch s {
	case StatusNew:
		return "Nuevo"
	case StatusInProgress:
		return "En Proceso"
	case StatusClosed:
		return "Cerrado"
	default:
		return string(s)
	}
}

// Request is a visitor's service request as stored by the remote API.
// ServiceID references the owning service without owning it.
type Request struct {
	ID          int64         `json:"id"`
	ServiceID   int64         `json:"servicio"`
	ClientName  string        `json:"cliente_nombre"`
	ClientEmail string        `json:"cliente_email"`
	Message     string        `json:"mensaje"`
	Status      RequestStatus `json:"estatus"`
	CreatedAt   time.Time     `json:"fecha_creacion"`
}

// RequestInput is the payload for creating or updating a request.
type RequestInput struct {
	ClientName  string        `json:"cliente_nombre" validate:"required"`
	ClientEmail string        `json:"cliente_email"  validate:"required,email"`
	Message     string        `json:"mensaje"        validate:"required"`
	Status      RequestStatus `json:"estatus,omitempty"`
}
