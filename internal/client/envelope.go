package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/travelhub/travel-client/internal/apperrors"
)

// Envelope is the shape of every travel API response body
type Envelope struct {
	Code      apperrors.ResultCode `json:"code"`
	Message   string               `json:"message,omitempty"`
	Data      json.RawMessage      `json:"data,omitempty"`
	Timestamp int64                `json:"timestamp,omitempty"`
}

const envelopeSchemaURL = "https://schemas.travelhub.local/envelope.json"

// code must be present and integral, data may be anything (including absent or null)
const envelopeSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["code"],
	"properties": {
		"code": {"type": "integer"},
		"message": {"type": ["string", "null"]},
		"timestamp": {"type": ["integer", "null"]}
	}
}`

var envelopeValidator = mustCompileEnvelopeSchema()

func mustCompileEnvelopeSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(envelopeSchema))
	if err != nil {
		panic(fmt.Sprintf("envelope schema is not valid JSON: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(envelopeSchemaURL, doc); err != nil {
		panic(fmt.Sprintf("adding envelope schema: %v", err))
	}

	schema, err := c.Compile(envelopeSchemaURL)
	if err != nil {
		panic(fmt.Sprintf("compiling envelope schema: %v", err))
	}
	return schema
}

// DecodeEnvelope validates body against the envelope schema and decodes it.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("response body is not JSON: %w", err)
	}

	if err := envelopeValidator.Validate(inst); err != nil {
		return nil, fmt.Errorf("response body is not an envelope: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}

	if isJSONNull(env.Data) {
		env.Data = nil
	}
	return &env, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
