package contract

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Fossilia/eospyo/errors"
)

// defaultInnerExtension names the archive entry read when loading from a
// zip: the archive stem plus this extension.
const defaultInnerExtension = ".wasm"

func loadError(path, detail string, cause error) error {
	return errors.New(errors.PhaseLoad, errors.KindSchema).
		Type("wasm").
		Value(path).
		Detail(detail).
		Cause(cause).
		Build()
}

// Load reads contract bytecode from path. Plain files are read
// verbatim; a ".zip" path is opened as an archive and the entry named
// after the archive (stem + ".wasm") is extracted.
func Load(path string) (Code, error) {
	return LoadWithExtension(path, defaultInnerExtension)
}

// LoadWithExtension is Load with control over the inner archive
// extension, for archives whose bytecode entry is not named "*.wasm".
func LoadWithExtension(path, innerExtension string) (Code, error) {
	if filepath.Ext(path) != ".zip" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Code{}, loadError(path, "read bytecode", err)
		}
		Logger().Debug("loaded contract bytecode",
			zap.String("path", path),
			zap.Int("bytes", len(raw)))
		return Code{data: raw}, nil
	}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return Code{}, loadError(path, "open archive", err)
	}
	defer archive.Close()

	stem := strings.TrimSuffix(filepath.Base(path), ".zip")
	entry := stem + innerExtension
	f, err := archive.Open(entry)
	if err != nil {
		return Code{}, loadError(path, "archive entry "+entry+" not found", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return Code{}, loadError(path, "read archive entry "+entry, err)
	}
	Logger().Debug("loaded contract bytecode from archive",
		zap.String("path", path),
		zap.String("entry", entry),
		zap.Int("bytes", len(raw)))
	return Code{data: raw}, nil
}
