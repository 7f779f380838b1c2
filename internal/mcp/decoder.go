package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "finsight/internal/errors"
)

// Decode unwraps a raw aggregator response down to the domain payload.
//
// The upstream endpoint answers with free-form text (sometimes an event
// stream) that embeds exactly one JSON-RPC envelope, whose
// result.content[0].text is itself a JSON-encoded string. Decoding is three
// explicit stages so failures are diagnosable by stage:
//
//  1. locate the object: first '{' through last '}' across newlines
//  2. parse and shape-check the JSON-RPC envelope
//  3. parse the nested text as the domain payload
func Decode(raw string) (json.RawMessage, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return nil, apperrors.New(apperrors.DecodeNoJSONObject)
	}

	var envelope rpcEnvelope
	if err := json.Unmarshal([]byte(raw[start:end+1]), &envelope); err != nil {
		return nil, apperrors.Wrap(apperrors.DecodeEnvelopeParse, err)
	}

	if envelope.Error != nil {
		return nil, apperrors.Wrapf(apperrors.DecodeInvalidRPC, nil,
			"aggregator returned RPC error %d: %s", envelope.Error.Code, envelope.Error.Message)
	}
	if envelope.Result == nil || len(envelope.Result.Content) == 0 {
		return nil, apperrors.Wrapf(apperrors.DecodeInvalidRPC, nil,
			"envelope has no result.content")
	}

	var text string
	if err := json.Unmarshal(envelope.Result.Content[0].Text, &text); err != nil {
		return nil, apperrors.Wrapf(apperrors.DecodeInvalidRPC, err,
			"result.content[0].text is not a string")
	}

	var payload json.RawMessage
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, apperrors.Wrap(apperrors.DecodePayloadParse, err)
	}
	return payload, nil
}

// DecodeInto decodes the raw response and unmarshals the domain payload into v.
func DecodeInto(raw string, v any) error {
	payload, err := Decode(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return apperrors.Wrap(apperrors.DecodePayloadParse, fmt.Errorf("payload shape: %w", err))
	}
	return nil
}
