package adapters

import (
	"testing"
	"time"

	"kvcache/internal/features/kv/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsgpackCodec_RoundTrip(t *testing.T) {
	codec := MsgpackCodec{}

	t.Run("String", func(t *testing.T) {
		data, err := codec.Encode(domain.Record{Value: "hello"})
		require.NoError(t, err)

		rec, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, "hello", rec.Value)
		assert.Nil(t, rec.ExpiresAt)
	})

	t.Run("BinaryPayload", func(t *testing.T) {
		payload := []byte{0x00, 0x01, 0xfe, 0xff}
		data, err := codec.Encode(domain.Record{Value: payload})
		require.NoError(t, err)

		rec, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, payload, rec.Value)
	})

	t.Run("Expiry", func(t *testing.T) {
		at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		data, err := codec.Encode(domain.Record{Value: "v", ExpiresAt: &at})
		require.NoError(t, err)

		rec, err := codec.Decode(data)
		require.NoError(t, err)
		require.NotNil(t, rec.ExpiresAt)
		assert.True(t, rec.ExpiresAt.Equal(at))
	})
}

func TestMsgpackCodec_Corrupt(t *testing.T) {
	_, err := MsgpackCodec{}.Decode([]byte("definitely not msgpack"))
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
}

func TestMsgpackCodec_Extension(t *testing.T) {
	assert.Equal(t, "", MsgpackCodec{}.Extension())
}

func TestJSONCodec_RoundTrip(t *testing.T) {
	codec := JSONCodec{}

	t.Run("NoExpiry", func(t *testing.T) {
		data, err := codec.Encode(domain.Record{Value: "hello"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"value":"hello","expiration":null}`, string(data))

		rec, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, "hello", rec.Value)
		assert.Nil(t, rec.ExpiresAt)
	})

	t.Run("EpochExpiry", func(t *testing.T) {
		at := time.Unix(1790000000, 0)
		data, err := codec.Encode(domain.Record{Value: true, ExpiresAt: &at})
		require.NoError(t, err)
		assert.JSONEq(t, `{"value":true,"expiration":1790000000}`, string(data))

		rec, err := codec.Decode(data)
		require.NoError(t, err)
		require.NotNil(t, rec.ExpiresAt)
		assert.Equal(t, int64(1790000000), rec.ExpiresAt.Unix())
	})

	t.Run("NumbersDecodeAsFloats", func(t *testing.T) {
		// The JSON variant only represents JSON types; integers come back
		// as float64. That is the documented trade-off of this encoding.
		data, err := codec.Encode(domain.Record{Value: 42})
		require.NoError(t, err)

		rec, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, float64(42), rec.Value)
	})
}

func TestJSONCodec_Corrupt(t *testing.T) {
	codec := JSONCodec{}

	cases := map[string]string{
		"NotJSON":      `garbage`,
		"WrongShape":   `[1,2]`,
		"MissingField": `{"value":1}`,
		"ExtraField":   `{"value":1,"expiration":null,"extra":true}`,
		"BadExpiry":    `{"value":1,"expiration":"soon"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode([]byte(raw))
			assert.ErrorIs(t, err, domain.ErrCorruptRecord)
		})
	}
}

func TestJSONCodec_Extension(t *testing.T) {
	assert.Equal(t, ".json", JSONCodec{}.Extension())
}
