package catalogapi

import "encoding/json"

// Page holds a list response from the catalog API. The API answers list
// endpoints with either a pagination envelope {"results": [...],
// "count": N} or a bare array; both decode into the same shape, with
// Count falling back to the number of results for bare arrays.
type Page[T any] struct {
	Results []T
	Count   int
}

// pageEnvelope mirrors the paginated wire shape.
type pageEnvelope[T any] struct {
	Results []T `json:"results"`
	Count   int `json:"count"`
}

// UnmarshalJSON accepts both the envelope and bare-array shapes.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := firstNonSpace(data)
	if trimmed == '[' {
		var results []T
		if err := json.Unmarshal(data, &results); err != nil {
			return err
		}
		p.Results = results
		p.Count = len(results)
		return nil
	}

	var envelope pageEnvelope[T]
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	p.Results = envelope.Results
	p.Count = envelope.Count
	return nil
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
