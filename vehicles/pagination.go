package vehicles

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/s0up4200/safetydash/schema"
)

// RewritePagination replaces the three navigation links of p with links to endpoint.
//
// The current link repeats the query, offset and page size used for the call. The next
// link is set only when offset+pageSize < p.Total, the previous link only when offset > 0
// and never points before offset 0. Applying it twice yields identical links.
func RewritePagination(p *schema.Pagination, endpoint, query string, offset, pageSize int) {
	if p == nil {
		return
	}

	p.CurrentURL = searchURL(endpoint, query, offset, pageSize)

	if hasNext(offset, pageSize, p.Total) {
		next := searchURL(endpoint, query, offset+pageSize, pageSize)
		p.NextURL = &next
	} else {
		p.NextURL = nil
	}

	if offset > 0 {
		prev := searchURL(endpoint, query, max(0, offset-pageSize), pageSize)
		p.PreviousURL = &prev
	} else {
		p.PreviousURL = nil
	}
}

// hasNext reports offset+pageSize < total, treating a sum past math.MaxInt as beyond any total
func hasNext(offset, pageSize, total int) bool {
	if pageSize > 0 && offset > math.MaxInt-pageSize {
		return false
	}
	return offset+pageSize < total
}

func searchURL(endpoint, query string, offset, pageSize int) string {
	return endpoint + "?" + encodeQuery(
		"query", query,
		"offset", strconv.Itoa(offset),
		"max", strconv.Itoa(pageSize),
	)
}

// encodeQuery encodes key/value pairs in the order given, with spaces as %20
func encodeQuery(pairs ...string) string {
	var sb strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(pairs[i]))
		sb.WriteByte('=')
		// QueryEscape turns a literal '+' into %2B, so every remaining '+' is a space
		sb.WriteString(strings.ReplaceAll(url.QueryEscape(pairs[i+1]), "+", "%20"))
	}
	return sb.String()
}
