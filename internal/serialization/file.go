package serialization

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// SaveFile writes tensors and metadata to a SafeTensors file at path,
// replacing any existing file.
func SaveFile(path string, tensors map[string]Tensor, metadata map[string]string) (err error) {
	//nolint:gosec // G304: path comes from the caller, which is expected for checkpoint saving
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := WriteSafeTensors(w, tensors, metadata); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}

	log.Debug().Str("path", path).Int("tensors", len(tensors)).Msg("saved safetensors")
	return nil
}

// LoadFile reads every tensor and the metadata from a SafeTensors file.
func LoadFile(path string) (map[string]Tensor, map[string]string, error) {
	//nolint:gosec // G304: path comes from the caller, which is expected for checkpoint loading
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = f.Close() // Best effort close, read-only
	}()

	tensors, metadata, err := ReadSafeTensors(bufio.NewReader(f))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("tensors", len(tensors)).Msg("loaded safetensors")
	return tensors, metadata, nil
}
