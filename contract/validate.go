package contract

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/Fossilia/eospyo/errors"
)

// Validate compiles the bytecode with a throwaway wazero runtime and
// reports whether it is a well-formed core WebAssembly module. The
// interpreter backend keeps this portable; nothing is instantiated or
// executed.
func (c Code) Validate(ctx context.Context) error {
	runtime := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer runtime.Close(ctx)

	compiled, err := runtime.CompileModule(ctx, c.data)
	if err != nil {
		return errors.New(errors.PhaseValidate, errors.KindFormat).
			Type("wasm").
			Detail("compile module").
			Cause(err).
			Build()
	}
	defer compiled.Close(ctx)

	Logger().Debug("contract bytecode validated",
		zap.Int("bytes", len(c.data)),
		zap.String("module", compiled.Name()))
	return nil
}
