package schema

import "encoding/json"

// Filter is a facet the search service reports alongside results
type Filter struct {
	Value string `json:"value"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Pagination describes a window into a result set
type Pagination struct {
	Count       int     `json:"count"`
	Max         int     `json:"max"`
	Offset      int     `json:"offset"`
	Sort        string  `json:"sort"`
	Order       *string `json:"order"`
	Total       int     `json:"total"`
	CurrentURL  string  `json:"currentUrl"`
	NextURL     *string `json:"nextUrl"`
	PreviousURL *string `json:"previousUrl"`
}

// HasNext reports whether a next page link is present
func (p *Pagination) HasNext() bool {
	return p.NextURL != nil
}

// HasPrevious reports whether a previous page link is present
func (p *Pagination) HasPrevious() bool {
	return p.PreviousURL != nil
}

// Meta is the envelope metadata attached to list responses
type Meta struct {
	Status     int               `json:"status"`
	Messages   []json.RawMessage `json:"messages"`
	Pagination *Pagination       `json:"pagination"`
	Filters    []Filter          `json:"filters"`
	Decoder    []json.RawMessage `json:"decoder"`
}
