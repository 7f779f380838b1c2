package mcp

import (
	"encoding/json"
	"fmt"
	"testing"

	apperrors "finsight/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope builds a valid wire response for a given domain payload.
func envelope(t *testing.T, payload any) string {
	t.Helper()
	inner, err := json.Marshal(payload)
	require.NoError(t, err)
	outer, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"result": map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": string(inner)},
			},
		},
	})
	require.NoError(t, err)
	return string(outer)
}

func TestDecode_ValidEnvelope(t *testing.T) {
	raw := envelope(t, map[string]any{"netWorth": 42})

	payload, err := Decode(raw)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, 42, decoded["netWorth"])
}

func TestDecode_SurroundingNoise(t *testing.T) {
	// upstream sometimes prefixes event-stream framing around the envelope
	raw := "event: message\ndata: " + envelope(t, map[string]any{"ok": true}) + "\n\n"

	payload, err := Decode(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(payload))
}

func TestDecode_NoJSONObject(t *testing.T) {
	for _, raw := range []string{"", "plain text", "]]]", "}{"} {
		_, err := Decode(raw)
		require.Error(t, err, "input %q", raw)
		assert.Equal(t, apperrors.DecodeNoJSONObject, apperrors.CodeOf(err))
	}
}

func TestDecode_EnvelopeNotJSON(t *testing.T) {
	_, err := Decode(`{"jsonrpc": "2.0", "result": }`)
	require.Error(t, err)
	assert.Equal(t, apperrors.DecodeEnvelopeParse, apperrors.CodeOf(err))
}

func TestDecode_RPCErrorMember(t *testing.T) {
	raw := `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"unknown tool"}}`

	_, err := Decode(raw)
	require.Error(t, err)
	assert.Equal(t, apperrors.DecodeInvalidRPC, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestDecode_MissingResultContent(t *testing.T) {
	cases := map[string]string{
		"no result":     `{"jsonrpc":"2.0","id":1}`,
		"empty content": `{"jsonrpc":"2.0","id":1,"result":{"content":[]}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(raw)
			require.Error(t, err)
			assert.Equal(t, apperrors.DecodeInvalidRPC, apperrors.CodeOf(err))
		})
	}
}

func TestDecode_TextNotAString(t *testing.T) {
	// a nested object where text should be a JSON-encoded string is an
	// envelope shape violation, not a payload parse failure
	raw := `{"jsonrpc":"2.0","id":1,"result":{"content":[{"type":"text","text":{"netWorth":42}}]}}`

	_, err := Decode(raw)
	require.Error(t, err)
	assert.Equal(t, apperrors.DecodeInvalidRPC, apperrors.CodeOf(err))
}

func TestDecode_PayloadNotJSON(t *testing.T) {
	raw := `{"jsonrpc":"2.0","id":1,"result":{"content":[{"type":"text","text":"not json at all"}]}}`

	_, err := Decode(raw)
	require.Error(t, err)
	assert.Equal(t, apperrors.DecodePayloadParse, apperrors.CodeOf(err))
}

func TestDecodeInto_ShapeMismatch(t *testing.T) {
	raw := envelope(t, map[string]any{"field": "value"})

	var out struct {
		Field int `json:"field"`
	}
	err := DecodeInto(raw, &out)
	require.Error(t, err)
	assert.Equal(t, apperrors.DecodePayloadParse, apperrors.CodeOf(err))
}

func TestDecode_RoundTrip(t *testing.T) {
	// whatever payload goes in through the double encoding comes back out
	payloads := []any{
		map[string]any{"a": []int{1, 2, 3}},
		map[string]any{"nested": map[string]any{"deep": "value with \"quotes\" and \n newlines"}},
	}
	for i, payload := range payloads {
		t.Run(fmt.Sprintf("payload_%d", i), func(t *testing.T) {
			want, err := json.Marshal(payload)
			require.NoError(t, err)

			got, err := Decode(envelope(t, payload))
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}
