package ample

import (
	"fmt"
	"time"

	"github.com/cerl-tools/ample/dotpath"
	"github.com/cerl-tools/ample/internal/clock"
)

// TimestampField is the record key written by AddTimestamp.
const TimestampField = "_timestamp"

// RecordTypeUnspecified is returned for records whose identifier carries no
// recognisable type prefix.
const RecordTypeUnspecified = "unspecified"

// recordTypes maps a CID prefix to the human-readable thesaurus record type.
var recordTypes = map[string]string{
	"cnl": "place",
	"cnp": "person",
	"cni": "printer",
	"cnc": "corporate",
}

// CID returns the CERL identifier of a record. It fails when the record has
// no single _id field or the field is not a string.
func CID(record Record) (string, error) {
	values, err := dotpath.Resolve(record, "_id")
	if err != nil {
		return "", err
	}

	value, err := dotpath.One(values)
	if err != nil {
		return "", fmt.Errorf("record identifier: %w", err)
	}

	id, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: _id is %T, not a string", ErrFormat, value)
	}
	return id, nil
}

// RecordType infers the thesaurus record type from the CID prefix.
func RecordType(record Record) string {
	id, err := CID(record)
	if err != nil || len(id) < 3 {
		return RecordTypeUnspecified
	}
	if kind, ok := recordTypes[id[:3]]; ok {
		return kind
	}
	return RecordTypeUnspecified
}

// AddTimestamp returns a copy of record with the retrieval time recorded
// under TimestampField as RFC 3339 UTC. The input record is not modified.
func AddTimestamp(record Record) Record {
	stamped := make(Record, len(record)+1)
	for key, value := range record {
		stamped[key] = value
	}
	stamped[TimestampField] = clock.Now().UTC().Format(time.RFC3339)
	return stamped
}
