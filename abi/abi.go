package abi

import (
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/Fossilia/eospyo"
	"github.com/Fossilia/eospyo/types"
	"github.com/Fossilia/eospyo/wire"
)

// placeholderSections is the number of chain ABI sections this library
// recognizes on the wire but never populates: ricardian_clauses,
// error_messages, abi_extensions, variants, action_results, kv_tables.
// Each serializes as the empty-string marker.
const placeholderSections = 6

// ABI is a validated contract-ABI description ready for encoding. Every
// embedded name and string was checked at construction, so Pack is total.
type ABI struct {
	version types.String
	types   []typeRow
	structs []structRow
	actions []actionRow
	tables  []tableRow
}

type typeRow struct {
	newTypeName types.String
	typ         types.String
}

type structRow struct {
	name   types.String
	base   types.String
	fields types.Array[types.Bytes]
}

type actionRow struct {
	name      types.Name
	typ       types.String
	ricardian types.String
}

type tableRow struct {
	name      types.Name
	indexType types.String
	keyNames  types.Array[types.String]
	keyTypes  types.Array[types.String]
	typ       types.String
}

// NewABI validates a parsed schema into an encodable ABI. Action and table
// names must be valid chain names; every other text field must satisfy the
// String single-byte rule.
func NewABI(schema Schema) (*ABI, error) {
	version, err := types.NewString(schema.Version)
	if err != nil {
		return nil, err
	}
	a := &ABI{version: version}

	for _, t := range schema.Types {
		row, err := newTypeRow(t)
		if err != nil {
			return nil, err
		}
		a.types = append(a.types, row)
	}
	for _, s := range schema.Structs {
		row, err := newStructRow(s)
		if err != nil {
			return nil, err
		}
		a.structs = append(a.structs, row)
	}
	for _, act := range schema.Actions {
		row, err := newActionRow(act)
		if err != nil {
			return nil, err
		}
		a.actions = append(a.actions, row)
	}
	for _, tbl := range schema.Tables {
		row, err := newTableRow(tbl)
		if err != nil {
			return nil, err
		}
		a.tables = append(a.tables, row)
	}

	Logger().Debug("abi validated",
		zap.String("version", schema.Version),
		zap.Int("types", len(a.types)),
		zap.Int("structs", len(a.structs)),
		zap.Int("actions", len(a.actions)),
		zap.Int("tables", len(a.tables)))
	return a, nil
}

func newTypeRow(t TypeDef) (typeRow, error) {
	newTypeName, err := types.NewString(t.NewTypeName)
	if err != nil {
		return typeRow{}, err
	}
	typ, err := types.NewString(t.Type)
	if err != nil {
		return typeRow{}, err
	}
	return typeRow{newTypeName: newTypeName, typ: typ}, nil
}

func newStructRow(s StructDef) (structRow, error) {
	name, err := types.NewString(s.Name)
	if err != nil {
		return structRow{}, err
	}
	base, err := types.NewString(s.Base)
	if err != nil {
		return structRow{}, err
	}
	// Each field travels as the concatenated name and type String
	// encodings, wrapped as one opaque Bytes element.
	fields, err := types.MakeArray(s.Fields, func(f FieldDef) (types.Bytes, error) {
		fieldName, err := types.NewString(f.Name)
		if err != nil {
			return nil, err
		}
		fieldType, err := types.NewString(f.Type)
		if err != nil {
			return nil, err
		}
		w := wire.NewWriter()
		fieldName.Pack(w)
		fieldType.Pack(w)
		return types.Bytes(w.Bytes()), nil
	})
	if err != nil {
		return structRow{}, err
	}
	return structRow{name: name, base: base, fields: fields}, nil
}

func newActionRow(a ActionDef) (actionRow, error) {
	name, err := types.NewName(a.Name)
	if err != nil {
		return actionRow{}, err
	}
	typ, err := types.NewString(a.Type)
	if err != nil {
		return actionRow{}, err
	}
	ricardian, err := types.NewString(a.RicardianContract)
	if err != nil {
		return actionRow{}, err
	}
	return actionRow{name: name, typ: typ, ricardian: ricardian}, nil
}

func newTableRow(t TableDef) (tableRow, error) {
	name, err := types.NewName(t.Name)
	if err != nil {
		return tableRow{}, err
	}
	indexType, err := types.NewString(t.IndexType)
	if err != nil {
		return tableRow{}, err
	}
	keyNames, err := types.MakeArray(t.KeyNames, types.NewString)
	if err != nil {
		return tableRow{}, err
	}
	keyTypes, err := types.MakeArray(t.KeyTypes, types.NewString)
	if err != nil {
		return tableRow{}, err
	}
	typ, err := types.NewString(t.Type)
	if err != nil {
		return tableRow{}, err
	}
	return tableRow{name: name, indexType: indexType, keyNames: keyNames, keyTypes: keyTypes, typ: typ}, nil
}

func (v typeRow) Pack(w *wire.Writer) {
	v.newTypeName.Pack(w)
	v.typ.Pack(w)
}

func (v typeRow) Size() int { return v.newTypeName.Size() + v.typ.Size() }

func (v structRow) Pack(w *wire.Writer) {
	v.name.Pack(w)
	v.base.Pack(w)
	v.fields.Pack(w)
}

func (v structRow) Size() int { return v.name.Size() + v.base.Size() + v.fields.Size() }

func (v actionRow) Pack(w *wire.Writer) {
	v.name.Pack(w)
	v.typ.Pack(w)
	v.ricardian.Pack(w)
}

func (v actionRow) Size() int { return v.name.Size() + v.typ.Size() + v.ricardian.Size() }

func (v tableRow) Pack(w *wire.Writer) {
	v.name.Pack(w)
	v.indexType.Pack(w)
	v.keyNames.Pack(w)
	v.keyTypes.Pack(w)
	v.typ.Pack(w)
}

func (v tableRow) Size() int {
	return v.name.Size() + v.indexType.Size() + v.keyNames.Size() + v.keyTypes.Size() + v.typ.Size()
}

// components returns the ABI sections in their fixed encoding order. An
// empty section contributes the empty-string marker, never nothing.
func (a *ABI) components() []eospyo.Value {
	out := []eospyo.Value{
		a.version,
		section(a.types),
		section(a.structs),
		section(a.actions),
		section(a.tables),
	}
	for i := 0; i < placeholderSections; i++ {
		out = append(out, types.String(""))
	}
	return out
}

// section wraps non-empty rows as an Array; an empty section encodes as
// the empty-string marker (both spell a zero varuint on the wire).
func section[T eospyo.Value](rows []T) eospyo.Value {
	if len(rows) == 0 {
		return types.String("")
	}
	return types.NewArray(rows...)
}

// Bin returns the concatenated section bytes before the hex wrapping.
func (a *ABI) Bin() []byte {
	w := wire.NewWriter()
	for _, c := range a.components() {
		c.Pack(w)
	}
	return w.Bytes()
}

// Hex returns the lowercase hex form of Bin, the textual convention the
// chain's JSON-RPC uses for ABI payloads.
func (a *ABI) Hex() string {
	return hex.EncodeToString(a.Bin())
}

// Pack appends the wire form: the hex payload re-exposed as a
// length-prefixed array of single bytes. The staging through hex doubles
// the intermediate text only; it is required for wire compatibility.
func (a *ABI) Pack(w *wire.Writer) {
	arr, err := types.HexToUint8Array(a.Hex())
	if err != nil {
		// Hex produced by this package is always well formed.
		panic(err)
	}
	arr.Pack(w)
}

// Size returns the encoded byte length of the wire form.
func (a *ABI) Size() int {
	n := 0
	for _, c := range a.components() {
		n += c.Size()
	}
	return wire.UvarintLen(uint64(n)) + n
}
