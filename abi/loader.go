package abi

import (
	"os"

	"github.com/Fossilia/eospyo/errors"
)

// LoadSchema reads and parses a JSON ABI document from disk.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, errors.New(errors.PhaseLoad, errors.KindSchema).
			Cause(err).
			Detail("read ABI file %q", path).
			Build()
	}
	return ParseSchema(data)
}

// Load is LoadSchema followed by validation into an encodable ABI.
func Load(path string) (*ABI, error) {
	schema, err := LoadSchema(path)
	if err != nil {
		return nil, err
	}
	return NewABI(schema)
}
