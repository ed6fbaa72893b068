package forms

import (
	"net/url"
	"strconv"

	"github.com/serviciosmx/catalog-admin/internal/catalog"
)

// ServiceForm holds the raw posted values of the service create/edit
// form. Numeric fields stay as strings until validation parses them.
type ServiceForm struct {
	Name             string
	Category         string
	Description      string
	PriceMXN         string
	Active           bool
	PriorityLevel    string
	ResponsibleEmail string
	EstimatedDays    string
}

// NewServiceForm returns a form with the defaults of a fresh service.
func NewServiceForm() ServiceForm {
	return ServiceForm{
		Category:      string(catalog.CategoryWeb),
		Active:        true,
		PriorityLevel: "3",
		EstimatedDays: "7",
	}
}

// ServiceFormFromValues binds a posted form body.
func ServiceFormFromValues(values url.Values) ServiceForm {
	return ServiceForm{
		Name:             values.Get("nombre"),
		Category:         values.Get("categoria"),
		Description:      values.Get("descripcion"),
		PriceMXN:         values.Get("precio_mxn"),
		Active:           values.Get("activo") == "on" || values.Get("activo") == "true",
		PriorityLevel:    values.Get("nivel_prioridad"),
		ResponsibleEmail: values.Get("responsable_email"),
		EstimatedDays:    values.Get("tiempo_estimado_dias"),
	}
}

// ServiceFormFromService prefills the form with an existing service for
// editing.
func ServiceFormFromService(svc *catalog.Service) ServiceForm {
	return ServiceForm{
		Name:             svc.Name,
		Category:         string(svc.Category),
		Description:      svc.Description,
		PriceMXN:         strconv.FormatFloat(svc.PriceMXN, 'f', -1, 64),
		Active:           svc.Active,
		PriorityLevel:    strconv.Itoa(svc.PriorityLevel),
		ResponsibleEmail: svc.ResponsibleEmail,
		EstimatedDays:    strconv.Itoa(svc.EstimatedDays),
	}
}

// Validate applies the client-side rules and returns a field-to-message
// map; an empty map means the form may be submitted.
func (f ServiceForm) Validate() Errors {
	errs := Errors{}

	if isBlank(f.Name) {
		errs["nombre"] = "El nombre es requerido"
	}

	if !catalog.Category(f.Category).IsValid() {
		errs["categoria"] = "La categoría no es válida"
	}

	if isBlank(f.Description) {
		errs["descripcion"] = "La descripción es requerida"
	}

	if precio, err := strconv.ParseFloat(f.PriceMXN, 64); err != nil || precio < 0 {
		errs["precio_mxn"] = "El precio debe ser un número mayor o igual a 0"
	}

	if prioridad, err := strconv.Atoi(f.PriorityLevel); err != nil || prioridad < 1 || prioridad > 5 {
		errs["nivel_prioridad"] = "La prioridad debe estar entre 1 y 5"
	}

	if !validEmail(f.ResponsibleEmail) {
		errs["responsable_email"] = "Debe ser un email válido"
	}

	if dias, err := strconv.Atoi(f.EstimatedDays); err != nil || dias < 0 {
		errs["tiempo_estimado_dias"] = "El tiempo estimado debe ser un número mayor o igual a 0"
	}

	return errs
}

// Payload converts a validated form into the typed create/update body.
// The struct-tag validation is a final guard before any network call.
func (f ServiceForm) Payload() (catalog.ServiceInput, error) {
	precio, err := strconv.ParseFloat(f.PriceMXN, 64)
	if err != nil {
		return catalog.ServiceInput{}, err
	}
	prioridad, err := strconv.Atoi(f.PriorityLevel)
	if err != nil {
		return catalog.ServiceInput{}, err
	}
	dias, err := strconv.Atoi(f.EstimatedDays)
	if err != nil {
		return catalog.ServiceInput{}, err
	}

	input := catalog.ServiceInput{
		Name:             f.Name,
		Category:         catalog.Category(f.Category),
		Description:      f.Description,
		PriceMXN:         precio,
		Active:           f.Active,
		PriorityLevel:    prioridad,
		ResponsibleEmail: f.ResponsibleEmail,
		EstimatedDays:    dias,
	}

	if err := validate.Struct(input); err != nil {
		return catalog.ServiceInput{}, err
	}
	return input, nil
}
