package ample

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/url"
	"strconv"
)

// QueryResult is the outcome of a search: the total hit count reported by the
// database and the abbreviated rows actually fetched. Rows stop at the
// backend's paging limit, so Hits can exceed len(Rows).
type QueryResult struct {
	Hits int
	Rows []Record
}

// IDs returns the identifier of every row, in result order. A row without an
// id field contributes an empty string, keeping positions aligned with Rows.
func (r *QueryResult) IDs() []string {
	ids := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		id, _ := row["id"].(string)
		ids = append(ids, id)
	}
	return ids
}

// Hits asks host for the number of matches for query without fetching rows.
func (c *Client) Hits(ctx context.Context, host, query string) (int, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("size", "1")
	params.Set("format", "json")

	resp, body, err := c.get(ctx, host, "_search", params)
	if err != nil {
		return 0, err
	}
	if err := checkStatus(resp); err != nil {
		return 0, err
	}

	return decodeHits(body)
}

// decodeHits handles both hit count shapes the API produces:
// {"hits": N} and {"hits": {"value": N}}.
func decodeHits(body []byte) (int, error) {
	var payload struct {
		Hits json.RawMessage `json:"hits"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(payload.Hits) == 0 {
		return 0, nil
	}

	var count int
	if err := json.Unmarshal(payload.Hits, &count); err == nil {
		return count, nil
	}

	var wrapped struct {
		Value int `json:"value"`
	}
	if err := json.Unmarshal(payload.Hits, &wrapped); err == nil {
		return wrapped.Value, nil
	}

	return 0, fmt.Errorf("%w: unrecognised hits payload %s", ErrFormat, payload.Hits)
}

// Search fetches every match for query on host, paging through results up to
// the backend's limit of 10 000 rows.
func (c *Client) Search(ctx context.Context, host, query string) (*QueryResult, error) {
	hits, err := c.Hits(ctx, host, query)
	if err != nil {
		return nil, err
	}

	result := &QueryResult{Hits: hits, Rows: []Record{}}
	for offset := 0; offset < hits && offset < maxSearchRows; offset += c.pageSize {
		rows, err := c.searchPage(ctx, host, query, offset)
		if err != nil {
			return nil, err
		}
		result.Rows = append(result.Rows, rows...)
	}

	return result, nil
}

// Pages returns an iterator over result pages for query on host. Each page
// holds up to the configured page size of rows; iteration stops at the
// backend's 10 000 row limit. Errors end the sequence.
func (c *Client) Pages(ctx context.Context, host, query string) iter.Seq2[[]Record, error] {
	return func(yield func([]Record, error) bool) {
		hits, err := c.Hits(ctx, host, query)
		if err != nil {
			yield(nil, err)
			return
		}

		for offset := 0; offset < hits && offset < maxSearchRows; offset += c.pageSize {
			rows, err := c.searchPage(ctx, host, query, offset)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rows, nil) {
				return
			}
		}
	}
}

// searchPage fetches a single page of abbreviated rows starting at offset.
func (c *Client) searchPage(ctx context.Context, host, query string, offset int) ([]Record, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("size", strconv.Itoa(c.pageSize))
	params.Set("from", strconv.Itoa(offset))
	params.Set("format", "json")

	resp, body, err := c.get(ctx, host, "_search", params)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var payload struct {
		Rows []Record `json:"rows"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return payload.Rows, nil
}
