package forms

import (
	"net/url"

	"github.com/serviciosmx/catalog-admin/internal/catalog"
)

// RequestForm holds the raw posted values of the service-request form.
type RequestForm struct {
	ClientName  string
	ClientEmail string
	Message     string
	Status      string
}

// NewRequestForm returns a form with the defaults of a fresh request.
func NewRequestForm() RequestForm {
	return RequestForm{Status: string(catalog.StatusNew)}
}

// RequestFormFromValues binds a posted form body. A missing status
// keeps the "nuevo" default so visitor submissions need no status field.
func RequestFormFromValues(values url.Values) RequestForm {
	form := RequestForm{
		ClientName:  values.Get("cliente_nombre"),
		ClientEmail: values.Get("cliente_email"),
		Message:     values.Get("mensaje"),
		Status:      values.Get("estatus"),
	}
	if form.Status == "" {
		form.Status = string(catalog.StatusNew)
	}
	return form
}

// Validate applies the client-side rules and returns a field-to-message
// map; an empty map means the form may be submitted.
func (f RequestForm) Validate() Errors {
	errs := Errors{}

	if isBlank(f.ClientName) {
		errs["cliente_nombre"] = "El nombre es requerido"
	}

	if !validEmail(f.ClientEmail) {
		errs["cliente_email"] = "Debe ser un email válido"
	}

	if isBlank(f.Message) {
		errs["mensaje"] = "El mensaje es requerido"
	}

	if !catalog.RequestStatus(f.Status).IsValid() {
		errs["estatus"] = "El estatus no es válido"
	}

	return errs
}

// Payload converts a validated form into the typed request body.
func (f RequestForm) Payload() (catalog.RequestInput, error) {
	input := catalog.RequestInput{
		ClientName:  f.ClientName,
		ClientEmail: f.ClientEmail,
		Message:     f.Message,
		Status:      catalog.RequestStatus(f.Status),
	}

	if err := validate.Struct(input); err != nil {
		return catalog.RequestInput{}, err
	}
	return input, nil
}
