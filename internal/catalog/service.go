package catalog

import (
	"errors"
	"time"
)

// Service-specific validation errors
var (
	// ErrServiceNameEmpty is returned when a service name is blank.
	ErrServiceNameEmpty = errors.New("service name cannot be empty")

	// ErrServiceCategoryInvalid is returned when a category is not one of
	// the known catalog categories.
	ErrServiceCategoryInvalid = errors.New("service category is not valid")

	// ErrServicePriceNegative is returned when a service price is below zero.
	ErrServicePriceNegative = errors.New("service price cannot be negative")

	// ErrServicePriorityOutOfRange is returned when the priority level is
	// outside the 1-5 range.
	ErrServicePriorityOutOfRange = errors.New("service priority must be between 1 and 5")

	// ErrServiceDurationNegative is returned when the estimated duration is
	// below zero.
	ErrServiceDurationNegative = errors.New("service estimated duration cannot be negative")
)

// Category identifies the area a catalog service belongs to. The wire
// values are the Spanish labels the remote API uses.
type Category string

const (
	CategoryWeb        Category = "Web"
	CategoryMobile     Category = "Móvil"
	CategoryCloud      Category = "Cloud"
	CategoryData       Category = "Data"
	CategorySecurity   Category = "Seguridad"
	CategoryConsulting Category = "Consultoría"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryWeb,
		CategoryMobile,
		CategoryCloud,
		CategoryData,
		CategorySecurity,
		CategoryConsulting,
	}
}

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWeb, CategoryMobile, CategoryCloud, CategoryData, CategorySecurity, CategoryConsulting:
		return true
	}
	return false
}

// Service is a catalog offering as stored by the remote API. Prices are
// in Mexican pesos. The active flag implements soft deletion: deleted
// services are marked inactive by the API rather than erased.
type Service struct {
	ID               int64     `json:"id"`
	Name             string    `json:"nombre"`
	Category         Category  `json:"categoria"`
	Description      string    `json:"descripcion"`
	PriceMXN         float64   `json:"precio_mxn"`
	Active           bool      `json:"activo"`
	PriorityLevel    int       `json:"nivel_prioridad"`
	ResponsibleEmail string    `json:"responsable_email"`
	EstimatedDays    int       `json:"tiempo_estimado_dias"`
	PublishedAt      time.Time `json:"fecha_publicacion"`
	UpdatedAt        time.Time `json:"fecha_actualizacion"`
}

// ServiceInput is the payload for creating or fully updating a service.
// The validate tags mirror the API's basic constraints; they are
// advisory only, the remote API remains authoritative.
type ServiceInput struct {
	Name             string   `json:"nombre"                 validate:"required"`
	Category         Category `json:"categoria"              validate:"required"`
	Description      string   `json:"descripcion"            validate:"required"`
	PriceMXN         float64  `json:"precio_mxn"             validate:"gte=0"`
	Active           bool     `json:"activo"`
	PriorityLevel    int      `json:"nivel_prioridad"        validate:"gte=1,lte=5"`
	ResponsibleEmail string   `json:"responsable_email"      validate:"required,email"`
	EstimatedDays    int      `json:"tiempo_estimado_dias"   validate:"gte=0"`
}

// Validate checks the input against the client-side constraints.
func (in *ServiceInput) Validate() error {
	if in.Name == "" {
		return ErrServiceNameEmpty
	}
	if !in.Category.IsValid() {
		return ErrServiceCategoryInvalid
	}
	if in.PriceMXN < 0 {
		return ErrServicePriceNegative
	}
	if in.PriorityLevel < 1 || in.PriorityLevel > 5 {
		return ErrServicePriorityOutOfRange
	}
	if in.EstimatedDays < 0 {
		return ErrServiceDurationNegative
	}
	return nil
}
