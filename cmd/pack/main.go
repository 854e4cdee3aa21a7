package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Fossilia/eospyo"
	"github.com/Fossilia/eospyo/abi"
	"github.com/Fossilia/eospyo/contract"
	"github.com/Fossilia/eospyo/types"
)

func main() {
	var (
		abiFile     = flag.String("abi", "", "Path to ABI schema json file")
		wasmFile    = flag.String("wasm", "", "Path to contract wasm file (or zip archive)")
		validate    = flag.Bool("validate", false, "Compile wasm bytecode before encoding")
		typeName    = flag.String("type", "", "Chain type to encode (see -list)")
		value       = flag.String("value", "", "Value to encode as -type")
		outFile     = flag.String("o", "", "Write raw encoded bytes to file instead of printing hex")
		list        = flag.Bool("list", false, "List registered chain types and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		abi.SetLogger(logger)
		contract.SetLogger(logger)
	}

	if *list {
		names := types.RegisteredNames()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *abiFile == "" && *wasmFile == "" && *typeName == "" {
		fmt.Fprintln(os.Stderr, "Usage: pack -abi <schema.json>")
		fmt.Fprintln(os.Stderr, "       pack -wasm <file.wasm|file.zip> [-validate]")
		fmt.Fprintln(os.Stderr, "       pack -type <name> -value <text>")
		fmt.Fprintln(os.Stderr, "       pack -list")
		fmt.Fprintln(os.Stderr, "       pack -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*abiFile, *wasmFile, *typeName, *value, *outFile, *validate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(abiFile, wasmFile, typeName, value, outFile string, validate bool) error {
	var encoded []byte

	switch {
	case abiFile != "":
		a, err := abi.Load(abiFile)
		if err != nil {
			return err
		}
		encoded = eospyo.Encode(a)

	case wasmFile != "":
		code, err := contract.Load(wasmFile)
		if err != nil {
			return err
		}
		if validate {
			if err := code.Validate(context.Background()); err != nil {
				return err
			}
		}
		encoded = eospyo.Encode(code)

	default:
		v, err := constructValue(typeName, value)
		if err != nil {
			return err
		}
		encoded = eospyo.Encode(v)
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, encoded, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(encoded), outFile)
		return nil
	}

	fmt.Println(hex.EncodeToString(encoded))
	return nil
}

// constructValue resolves typeName in the registry and builds a value
// from its textual form.
func constructValue(typeName, raw string) (eospyo.Value, error) {
	t, err := types.FromString(typeName)
	if err != nil {
		return nil, err
	}
	return t.New(convertNative(t.Name, raw))
}

// convertNative turns command-line text into the Go native each chain
// type constructs from. Unparseable numerics pass through as strings so
// the registry reports the mismatch.
func convertNative(typeName, raw string) any {
	switch typeName {
	case "bool":
		return raw == "true" || raw == "1"
	case "int8", "uint8", "uint16", "uint32":
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return raw
		}
		return v
	case "uint64", "varuint32":
		v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return raw
		}
		return v
	default:
		return raw
	}
}
