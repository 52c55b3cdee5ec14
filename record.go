package ample

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Record is a decoded AMPLE record. Records have no fixed schema; their shape
// varies per source database. Use dotpath.Resolve to read nested fields.
//
// Record is an alias rather than a defined type so that records pass through
// dotpath and encoding/json exactly like any other decoded JSON tree.
type Record = map[string]any

// ExportFormat selects the serialisation returned by RecordExport.
type ExportFormat string

const (
	FormatJSON    ExportFormat = "json"
	FormatYAML    ExportFormat = "yaml"
	FormatRDFTTL  ExportFormat = "rdf/ttl"
	FormatRDFXML  ExportFormat = "rdf/xml"
	FormatJSONLD  ExportFormat = "rdf/jsonld"
	FormatUNIMARC ExportFormat = "unimarc"
)

// formatParams maps an export format to the form/style parameter pair the
// AMPLE API derives record serialisations from.
var formatParams = map[ExportFormat]struct{ form, style string }{
	FormatJSON:    {"json", ""},
	FormatYAML:    {"txt", ""},
	FormatRDFTTL:  {"txt", "ttl"},
	FormatRDFXML:  {"rdfxml", ""},
	FormatJSONLD:  {"json", "jsonld"},
	FormatUNIMARC: {"txt", "internal"},
}

// Record fetches the record with the given identifier from host as a decoded
// JSON tree.
func (c *Client) Record(ctx context.Context, host, id string) (Record, error) {
	resp, body, err := c.fetchRecord(ctx, host, id, "json", "")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return record, nil
}

// RecordExport fetches the record with the given identifier from host in the
// requested export format and returns the response body untouched. Formats
// outside the supported set fail before any request is made; a remote
// rejection of the format maps to ErrUnsupportedFormat as well.
func (c *Client) RecordExport(ctx context.Context, host, id string, format ExportFormat) ([]byte, error) {
	params, ok := formatParams[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	resp, body, err := c.fetchRecord(ctx, host, id, params.form, params.style)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusNotAcceptable, http.StatusUnsupportedMediaType:
		return nil, fmt.Errorf("%w: %s does not serve %q", ErrUnsupportedFormat, host, format)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return body, nil
}

// fetchRecord issues the record GET shared by Record and RecordExport.
func (c *Client) fetchRecord(ctx context.Context, host, id, form, style string) (*http.Response, []byte, error) {
	params := url.Values{}
	params.Set("format", form)
	if style != "" {
		params.Set("style", style)
	}
	return c.get(ctx, host, url.PathEscape(id), params)
}
