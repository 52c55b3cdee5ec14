package ample

import "context"

// Convenience wrappers over Search, Record and RecordExport for the
// well-known CERL databases.

// CTQuery searches the CERL Thesaurus.
func (c *Client) CTQuery(ctx context.Context, query string) (*QueryResult, error) {
	return c.Search(ctx, c.Host(AliasCT), query)
}

// CTRecord fetches a CERL Thesaurus record.
func (c *Client) CTRecord(ctx context.Context, id string) (Record, error) {
	return c.Record(ctx, c.Host(AliasCT), id)
}

// CTRecordExport exports a CERL Thesaurus record.
func (c *Client) CTRecordExport(ctx context.Context, id string, format ExportFormat) ([]byte, error) {
	return c.RecordExport(ctx, c.Host(AliasCT), id, format)
}

// ISTCQuery searches the Incunabula Short Title Catalogue.
func (c *Client) ISTCQuery(ctx context.Context, query string) (*QueryResult, error) {
	return c.Search(ctx, c.Host(AliasISTC), query)
}

// ISTCRecord fetches an ISTC record.
func (c *Client) ISTCRecord(ctx context.Context, id string) (Record, error) {
	return c.Record(ctx, c.Host(AliasISTC), id)
}

// ISTCRecordExport exports an ISTC record.
func (c *Client) ISTCRecordExport(ctx context.Context, id string, format ExportFormat) ([]byte, error) {
	return c.RecordExport(ctx, c.Host(AliasISTC), id, format)
}

// HoldInstQuery searches the Holding Institutions database.
func (c *Client) HoldInstQuery(ctx context.Context, query string) (*QueryResult, error) {
	return c.Search(ctx, c.Host(AliasHoldInst), query)
}

// HoldInstRecord fetches a Holding Institutions record.
func (c *Client) HoldInstRecord(ctx context.Context, id string) (Record, error) {
	return c.Record(ctx, c.Host(AliasHoldInst), id)
}

// HoldInstRecordExport exports a Holding Institutions record.
func (c *Client) HoldInstRecordExport(ctx context.Context, id string, format ExportFormat) ([]byte, error) {
	return c.RecordExport(ctx, c.Host(AliasHoldInst), id, format)
}

// MEIQuery searches the Material Evidence in Incunabula database.
func (c *Client) MEIQuery(ctx context.Context, query string) (*QueryResult, error) {
	return c.Search(ctx, c.Host(AliasMEI), query)
}

// MEIRecord fetches a Material Evidence in Incunabula record.
func (c *Client) MEIRecord(ctx context.Context, id string) (Record, error) {
	return c.Record(ctx, c.Host(AliasMEI), id)
}

// MEIRecordExport exports a Material Evidence in Incunabula record.
func (c *Client) MEIRecordExport(ctx context.Context, id string, format ExportFormat) ([]byte, error) {
	return c.RecordExport(ctx, c.Host(AliasMEI), id, format)
}
