package abi

import (
	"bytes"
	"encoding/json"

	"github.com/Fossilia/eospyo/errors"
)

// Schema is the JSON shape of a contract ABI. The accepted key set is
// closed: decoding rejects unrecognized keys. Every section except version
// is independently optional; absent sections encode as empty.
type Schema struct {
	Comment string      `json:"____comment,omitempty"`
	Version string      `json:"version"`
	Types   []TypeDef   `json:"types,omitempty"`
	Structs []StructDef `json:"structs,omitempty"`
	Actions []ActionDef `json:"actions,omitempty"`
	Tables  []TableDef  `json:"tables,omitempty"`

	// Recognized but not yet supported; they always serialize as empty.
	RicardianClauses []json.RawMessage          `json:"ricardian_clauses,omitempty"`
	AbiExtensions    []json.RawMessage          `json:"abi_extensions,omitempty"`
	Variants         []json.RawMessage          `json:"variants,omitempty"`
	ActionResults    []json.RawMessage          `json:"action_results,omitempty"`
	KvTables         map[string]json.RawMessage `json:"kv_tables,omitempty"`
}

// TypeDef aliases an existing type under a new name.
type TypeDef struct {
	NewTypeName string `json:"new_type_name"`
	Type        string `json:"type"`
}

// StructDef describes a named data structure with ordered fields.
type StructDef struct {
	Name   string     `json:"name"`
	Base   string     `json:"base"`
	Fields []FieldDef `json:"fields"`
}

// FieldDef is one struct field: a name and a type string.
type FieldDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ActionDef describes a callable contract action.
type ActionDef struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	RicardianContract string `json:"ricardian_contract"`
}

// TableDef describes an on-chain table.
type TableDef struct {
	Name      string   `json:"name"`
	IndexType string   `json:"index_type"`
	KeyNames  []string `json:"key_names"`
	KeyTypes  []string `json:"key_types"`
	Type      string   `json:"type"`
}

// ParseSchema decodes a JSON ABI document. Unrecognized keys and a missing
// version are schema errors.
func ParseSchema(data []byte) (Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Schema
	if err := dec.Decode(&s); err != nil {
		return Schema{}, errors.Schema("invalid ABI document", err)
	}
	if s.Version == "" {
		return Schema{}, errors.Schema(`missing required section "version"`, nil)
	}
	return s, nil
}
