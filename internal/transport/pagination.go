package transport

import (
	"fmt"
	"net/http"
	"strconv"
)

// PageParams are the client-controlled pagination inputs, parsed from the
// page and page_size query parameters and clamped to the configured bounds.
type PageParams struct {
	Page     int
	PageSize int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p PageParams) Limit() int {
	return p.PageSize
}

// ParsePageParams reads page/page_size from the request, falling back to
// defaultSize and never exceeding maxSize.
func ParsePageParams(r *http.Request, defaultSize, maxSize int) PageParams {
	params := PageParams{Page: 1, PageSize: defaultSize}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			params.Page = p
		}
	}

	if sizeStr := r.URL.Query().Get("page_size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 {
			if s > maxSize {
				s = maxSize
			}
			params.PageSize = s
		}
	}

	return params
}

// PageResponse is the list envelope: total count, absolute next/previous page
// links (null when there is no such page) and the result array. Unpaginated
// lists use the same shape with both links null.
type PageResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPageResponse builds the envelope for a paginated list, deriving the
// next/previous URLs from the incoming request.
func NewPageResponse(r *http.Request, count int64, params PageParams, results interface{}) PageResponse {
	resp := PageResponse{Count: count, Results: results}

	lastPage := int((count + int64(params.PageSize) - 1) / int64(params.PageSize))
	if params.Page < lastPage {
		next := pageURL(r, params.Page+1, params.PageSize)
		resp.Next = &next
	}
	if params.Page > 1 {
		prev := pageURL(r, params.Page-1, params.PageSize)
		resp.Previous = &prev
	}

	return resp
}

// NewUnpaginatedResponse wraps a full result set in the list envelope with
// both links null.
func NewUnpaginatedResponse(count int64, results interface{}) PageResponse {
	return PageResponse{Count: count, Results: results}
}

func pageURL(r *http.Request, page, pageSize int) string {
	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	return fmt.Sprintf("%s://%s%s", scheme, r.Host, u.RequestURI())
}
