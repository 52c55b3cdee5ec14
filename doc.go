// Package ample is a client for AMPLE bibliographic database instances, the
// search and record retrieval API convention used by the CERL databases
// (Thesaurus, ISTC, HoldInst, MEI).
//
// A Client issues searches, fetches records as decoded JSON trees and exports
// records in the serialisations the API offers. Records have no fixed schema;
// use the dotpath package to read nested fields:
//
//	client := ample.New(ample.Config{})
//	record, err := client.CTRecord(ctx, "cnp01875938")
//	if err != nil {
//		// ...
//	}
//	names, err := dotpath.Resolve(record, "data.heading.part")
//
// The library holds no process-wide state: the database alias table lives in
// the client configuration, every call is independent, and failed requests
// surface immediately without retries.
package ample
