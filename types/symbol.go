package types

import (
	"strconv"
	"strings"

	"github.com/Fossilia/eospyo/errors"
	"github.com/Fossilia/eospyo/wire"
)

const (
	// symbolWidth is the fixed wire footprint of a Symbol: one precision
	// byte plus up to seven code bytes, null-padded.
	symbolWidth = 8

	maxPrecision = 16
	codePattern  = "^[A-Z]{1,7}$"
)

// Symbol is a currency descriptor: a decimal precision in [0, 16] paired
// with a currency code of one to seven uppercase letters. Textually it is
// "<precision>,<CODE>", e.g. "8,WAX".
type Symbol struct {
	code      string
	precision uint8
}

// NewSymbol validates precision and code.
func NewSymbol(precision int, code string) (Symbol, error) {
	if precision < 0 || precision > maxPrecision {
		return Symbol{}, errors.Range("symbol", precision, 0, maxPrecision)
	}
	if !validCode(code) {
		return Symbol{}, errors.Pattern("symbol", code, codePattern)
	}
	return Symbol{code: code, precision: uint8(precision)}, nil
}

// NewSymbolFromString parses the "<precision>,<CODE>" textual form.
func NewSymbolFromString(s string) (Symbol, error) {
	precStr, code, ok := strings.Cut(s, ",")
	if !ok {
		return Symbol{}, errors.Format("symbol", s, `expected "<precision>,<CODE>"`)
	}
	precision, err := strconv.Atoi(precStr)
	if err != nil {
		return Symbol{}, errors.Format("symbol", s, "precision is not an integer")
	}
	return NewSymbol(precision, code)
}

// Precision returns the number of decimal places the symbol carries.
func (v Symbol) Precision() int { return int(v.precision) }

// Code returns the currency code.
func (v Symbol) Code() string { return v.code }

// String returns the "<precision>,<CODE>" textual form.
func (v Symbol) String() string {
	return strconv.Itoa(int(v.precision)) + "," + v.code
}

func (v Symbol) Pack(w *wire.Writer) {
	w.Byte(v.precision)
	for i := 0; i < symbolWidth-1; i++ {
		if i < len(v.code) {
			w.Byte(v.code[i])
		} else {
			w.Byte(0)
		}
	}
}

func (v Symbol) Size() int { return symbolWidth }

// UnpackSymbol reads the fixed 8-byte field: byte 0 is the precision, the
// code is the run of uppercase ASCII letters starting at byte 1; the first
// non-uppercase byte, including the null padding, terminates it. The
// uppercase scan is a Symbol-specific wire property, not a general pattern.
func UnpackSymbol(r *wire.Reader) (Symbol, error) {
	buf, err := r.ReadBytes(symbolWidth)
	if err != nil {
		return Symbol{}, errors.Truncated("symbol", err)
	}
	end := 1
	for end < symbolWidth && buf[end] >= 'A' && buf[end] <= 'Z' {
		end++
	}
	return NewSymbol(int(buf[0]), string(buf[1:end]))
}

// DecodeSymbol decodes a Symbol from the front of data.
func DecodeSymbol(data []byte) (Symbol, int, error) {
	return decodeOne(data, UnpackSymbol)
}

func validCode(code string) bool {
	if len(code) < 1 || len(code) > 7 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// Asset is a decimal amount paired with a Symbol, textually
// "<amount> <CODE>" with exactly one separating space, e.g.
// "5.00000000 WAX". The amount is held as the integer and fractional
// digits concatenated into a single unsigned 64-bit value; the symbol's
// precision records where the decimal point sits. No floating-point
// arithmetic is involved at any step.
type Asset struct {
	symbol Symbol
	amount uint64
}

// NewAsset parses the "<amount> <CODE>" textual form. A decimal point, if
// present, must be followed by at least one fractional digit; the number of
// fractional digits becomes the symbol precision.
func NewAsset(s string) (Asset, error) {
	amountStr, code, err := splitAsset(s)
	if err != nil {
		return Asset{}, err
	}

	intDigits, fracDigits, err := splitAmount(s, amountStr)
	if err != nil {
		return Asset{}, err
	}

	amount, err := strconv.ParseUint(intDigits+fracDigits, 10, 64)
	if err != nil {
		return Asset{}, errors.Range("asset", amountStr, 0, uint64(1<<64-1))
	}

	symbol, err := NewSymbol(len(fracDigits), code)
	if err != nil {
		return Asset{}, err
	}
	return Asset{symbol: symbol, amount: amount}, nil
}

func splitAsset(s string) (amount, code string, err error) {
	parts := strings.Split(strings.TrimSpace(s), " ")
	if len(parts) != 2 {
		return "", "", errors.Format("asset", s, "exactly one space required between amount and code")
	}
	return parts[0], parts[1], nil
}

// splitAmount separates the integer and fractional digit groups without
// interpreting them numerically.
func splitAmount(input, amount string) (intDigits, fracDigits string, err error) {
	if strings.HasPrefix(amount, "-") {
		return "", "", errors.Range("asset", amount, 0, uint64(1<<64-1))
	}
	i := 0
	for i < len(amount) && amount[i] >= '0' && amount[i] <= '9' {
		i++
	}
	intDigits = amount[:i]
	if intDigits == "" {
		return "", "", errors.Format("asset", input, "amount must start with a digit")
	}
	if i == len(amount) {
		return intDigits, "", nil
	}
	if amount[i] != '.' {
		return "", "", errors.Format("asset", input, "unexpected character in amount")
	}
	j := i + 1
	for j < len(amount) && amount[j] >= '0' && amount[j] <= '9' {
		j++
	}
	fracDigits = amount[i+1 : j]
	if fracDigits == "" {
		return "", "", errors.Format("asset", input, "decimal point provided but no fractional digits")
	}
	if j != len(amount) {
		return "", "", errors.Format("asset", input, "unexpected character in amount")
	}
	return intDigits, fracDigits, nil
}

// Amount returns the combined integer-and-fractional digits value,
// i.e. amount times 10^precision.
func (v Asset) Amount() uint64 { return v.amount }

// Symbol returns the precision and currency code descriptor.
func (v Asset) Symbol() Symbol { return v.symbol }

// String reconstructs the "<amount> <CODE>" textual form, re-inserting the
// decimal point precision digits from the right. With precision 0 there is
// no decimal point.
func (v Asset) String() string {
	digits := strconv.FormatUint(v.amount, 10)
	p := int(v.symbol.precision)
	if p > 0 {
		if len(digits) <= p {
			digits = strings.Repeat("0", p-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-p] + "." + digits[len(digits)-p:]
	}
	return digits + " " + v.symbol.code
}

func (v Asset) Pack(w *wire.Writer) {
	w.WriteU64(v.amount)
	v.symbol.Pack(w)
}

func (v Asset) Size() int { return 8 + symbolWidth }

// UnpackAsset reads the 8-byte amount followed by the 8-byte symbol field.
func UnpackAsset(r *wire.Reader) (Asset, error) {
	amount, err := r.ReadU64()
	if err != nil {
		return Asset{}, errors.Truncated("asset", err)
	}
	symbol, err := UnpackSymbol(r)
	if err != nil {
		return Asset{}, err
	}
	return Asset{symbol: symbol, amount: amount}, nil
}

// DecodeAsset decodes an Asset from the front of data.
func DecodeAsset(data []byte) (Asset, int, error) {
	return decodeOne(data, UnpackAsset)
}
