package models

// Page is one page of a paginated list endpoint.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func (p *Page[T]) NextURL() string {
	if p == nil || p.Next == nil {
		return ""
	}
	return *p.Next
}
