package catalogapi

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// User-facing messages kept in Spanish to match the catalog's audience.
const (
	// MsgServerUnreachable is the fixed message for transport failures
	// where the request was sent but no response ever arrived.
	MsgServerUnreachable = "No se pudo conectar con el servidor. Verifica que el backend esté corriendo."

	// MsgGenericError is the last-resort message when an error payload
	// carries no recognizable field.
	MsgGenericError = "Ha ocurrido un error"

	// MsgRequestFailed is the fallback when a request could not even be
	// constructed and the underlying failure has no description.
	MsgRequestFailed = "Error al realizar la petición"
)

// APIError is the normalized failure produced for every unsuccessful
// call. Status is the HTTP status of the response, or 0 when the request
// never reached the network (transport or build failure). Data carries
// the raw or structured detail payload when the server provided one.
type APIError struct {
	Status  int
	Message string
	Data    any
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// transportError builds the tier-2 failure: request sent, no response.
func transportError() *APIError {
	return &APIError{Status: 0, Message: MsgServerUnreachable}
}

// buildError builds the tier-3 failure: the request could not be
// constructed or sent due to a local problem.
func buildError(err error) *APIError {
	msg := MsgRequestFailed
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &APIError{Status: 0, Message: msg}
}

// markupError builds the failure for a response that declared a markup
// content type where structured data was expected. The observed status
// is preserved so callers can still distinguish transport failures.
func markupError(status int, body []byte) *APIError {
	if title := extractMarkupTitle(body); title != "" {
		return &APIError{Status: status, Message: title, Data: string(body)}
	}
	return &APIError{
		Status: status,
		Message: fmt.Sprintf(
			"El servidor respondió %d con HTML en lugar de datos. Causas comunes: ALLOWED_HOSTS mal configurado, CORS o endpoint inexistente.",
			status,
		),
		Data: string(body),
	}
}

// errorPayload is the tagged set of shapes an error body may take. The
// variants are tried in declaration order: message, details, error.
type errorPayload struct {
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
	Error   string          `json:"error"`
}

// normalizeErrorBody turns an error response body into an *APIError
// following the fixed priority order: markup title extraction, then the
// message/details/error variants, then a generic fallback.
func normalizeErrorBody(status int, contentType string, body []byte) *APIError {
	if isMarkup(contentType) {
		return markupError(status, body)
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return &APIError{Status: status, Message: MsgGenericError, Data: string(body)}
	}

	data := decodeDetailData(payload.Details, body)

	switch {
	case payload.Message != "":
		return &APIError{Status: status, Message: payload.Message, Data: data}
	case len(payload.Details) > 0 && !isJSONNull(payload.Details):
		return &APIError{Status: status, Message: detailsMessage(payload.Details), Data: data}
	case payload.Error != "":
		return &APIError{Status: status, Message: payload.Error, Data: data}
	default:
		return &APIError{Status: status, Message: MsgGenericError, Data: data}
	}
}

// decodeDetailData picks the error's Data: the details field when
// present, otherwise the whole payload.
func decodeDetailData(details json.RawMessage, body []byte) any {
	raw := details
	if len(raw) == 0 || isJSONNull(raw) {
		raw = body
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return string(raw)
	}
	return data
}

// detailsMessage renders the details variant: a string is used verbatim,
// a mapping joins its values with ", " in sorted key order so the result
// is deterministic.
func detailsMessage(details json.RawMessage) string {
	var s string
	if err := json.Unmarshal(details, &s); err == nil {
		return s
	}

	var m map[string]any
	if err := json.Unmarshal(details, &m); err == nil && len(m) > 0 {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		values := make([]string, 0, len(m))
		for _, k := range keys {
			values = append(values, fmt.Sprint(m[k]))
		}
		return strings.Join(values, ", ")
	}

	return MsgGenericError
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// isMarkup reports whether the declared content type indicates an HTML
// or XHTML payload.
func isMarkup(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}

// Title extraction patterns, in order of preference.
var (
	h1Pattern    = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	pPattern     = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	tagPattern   = regexp.MustCompile(`<[^>]+>`)
)

// extractMarkupTitle pulls a human-readable title out of an HTML error
// page, preferring a heading, then the document title, then the first
// paragraph. Returns "" when none match.
func extractMarkupTitle(body []byte) string {
	for _, pattern := range []*regexp.Regexp{h1Pattern, titlePattern, pPattern} {
		if m := pattern.FindSubmatch(body); m != nil {
			text := tagPattern.ReplaceAllString(string(m[1]), "")
			if text = strings.TrimSpace(text); text != "" {
				return text
			}
		}
	}
	return ""
}
