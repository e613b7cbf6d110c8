// ABOUTME: Tool descriptor type shared by all bucket catalogs
// ABOUTME: Input schemas are raw JSON Schema documents served verbatim

package tools

import (
	"encoding/json"
	"strings"
)

// Descriptor describes one callable tool as advertised in tools/list.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

const accountIDProp = `"account_id":{"type":"number","description":"Chatwoot account ID to use. If omitted, uses the default account from CHATWOOT_ACCOUNT_ID env var."}`

// objSchema builds an object schema from a comma-joined properties fragment.
func objSchema(props string, required ...string) json.RawMessage {
	var b strings.Builder
	b.WriteString(`{"type":"object","properties":{`)
	b.WriteString(props)
	b.WriteString(`}`)
	if len(required) > 0 {
		encoded, _ := json.Marshal(required)
		b.WriteString(`,"required":`)
		b.Write(encoded)
	}
	b.WriteString(`}`)
	return json.RawMessage(b.String())
}

// acctSchema is objSchema with the shared account_id override property added.
func acctSchema(props string, required ...string) json.RawMessage {
	if props == "" {
		return objSchema(accountIDProp, required...)
	}
	return objSchema(props+","+accountIDProp, required...)
}

func nameSet(descriptors []Descriptor) map[string]struct{} {
	set := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		set[d.Name] = struct{}{}
	}
	return set
}
