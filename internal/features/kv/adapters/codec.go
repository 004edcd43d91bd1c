package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"kvcache/internal/features/kv/domain"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes a cache record to and from its on-disk representation.
type Codec interface {
	Encode(rec domain.Record) ([]byte, error)
	Decode(data []byte) (domain.Record, error)
	// Extension is appended to the key digest when building file names.
	Extension() string
}

// MsgpackCodec is the binary record encoding. It preserves the value's
// exact type across a round trip, including raw byte payloads.
type MsgpackCodec struct{}

type msgpackRecord struct {
	Value     any        `msgpack:"value"`
	ExpiresAt *time.Time `msgpack:"expires_at"`
}

func (MsgpackCodec) Encode(rec domain.Record) ([]byte, error) {
	data, err := msgpack.Marshal(msgpackRecord{Value: rec.Value, ExpiresAt: rec.ExpiresAt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}

func (MsgpackCodec) Decode(data []byte) (domain.Record, error) {
	var rec msgpackRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	return domain.Record{Value: rec.Value, ExpiresAt: rec.ExpiresAt}, nil
}

func (MsgpackCodec) Extension() string { return "" }

// JSONCodec is the human-readable record encoding: an object with exactly
// the fields "value" and "expiration", where expiration is null or Unix
// epoch seconds. Using JSON restricts storable values to JSON-representable
// types; that is a deliberate trade-off of this variant, not an oversight.
type JSONCodec struct{}

type jsonRecord struct {
	Value      any    `json:"value"`
	Expiration *int64 `json:"expiration"`
}

func (JSONCodec) Encode(rec domain.Record) ([]byte, error) {
	out := jsonRecord{Value: rec.Value}
	if rec.ExpiresAt != nil {
		epoch := rec.ExpiresAt.Unix()
		out.Expiration = &epoch
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte) (domain.Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	valueRaw, hasValue := fields["value"]
	expirationRaw, hasExpiration := fields["expiration"]
	if len(fields) != 2 || !hasValue || !hasExpiration {
		return domain.Record{}, fmt.Errorf("%w: expected exactly the fields value and expiration", domain.ErrCorruptRecord)
	}

	var rec domain.Record
	if err := json.Unmarshal(valueRaw, &rec.Value); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	var epoch *int64
	if err := json.Unmarshal(expirationRaw, &epoch); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	if epoch != nil {
		at := time.Unix(*epoch, 0)
		rec.ExpiresAt = &at
	}
	return rec, nil
}

func (JSONCodec) Extension() string { return ".json" }
