// Package serialization reads and writes float32 tensors in the SafeTensors
// format.
//
// Layout:
//
//	[8 bytes: header_size (uint64 LE)]
//	[header_size bytes: JSON header]
//	[tensor data: raw little-endian float32]
//
// The JSON header maps each tensor name to its dtype, shape and byte range
// within the data section. An optional "__metadata__" entry carries string
// key/value pairs. Tensors are written in alphabetical order by name.
package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
)

// MaxHeaderSize bounds the JSON header read from untrusted input.
const MaxHeaderSize = 100 * 1024 * 1024

const (
	metadataKey = "__metadata__"
	dtypeF32    = "F32"
)

// Tensor is a named float32 array with a shape.
type Tensor struct {
	Shape []int
	Data  []float32
}

// NumElements returns the product of the shape dimensions.
func (t Tensor) NumElements() int {
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// tensorHeader describes one tensor in the SafeTensors header.
type tensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end)
}

// WriteSafeTensors writes tensors and optional metadata to w.
//
// Returns an error if a tensor's data length disagrees with its shape.
func WriteSafeTensors(w io.Writer, tensors map[string]Tensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if name == metadataKey {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidTensorName, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	if len(metadata) > 0 {
		header[metadataKey] = metadata
	}

	var offset int64
	for _, name := range names {
		t := tensors[name]
		if t.NumElements() != len(t.Data) {
			return fmt.Errorf("tensor %q: shape %v needs %d elements, has %d: %w",
				name, t.Shape, t.NumElements(), len(t.Data), ErrShapeMismatch)
		}

		shape := make([]int64, len(t.Shape))
		for i, d := range t.Shape {
			shape[i] = int64(d)
		}
		size := int64(len(t.Data) * 4)
		header[name] = tensorHeader{
			DType:       dtypeF32,
			Shape:       shape,
			DataOffsets: [2]int64{offset, offset + size},
		}
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, name := range names {
		if err := binary.Write(w, binary.LittleEndian, tensors[name].Data); err != nil {
			return fmt.Errorf("failed to write tensor %s: %w", name, err)
		}
	}
	return nil
}

// ReadSafeTensors reads every tensor and the metadata from r.
//
// Only F32 tensors are supported.
func ReadSafeTensors(r io.Reader) (map[string]Tensor, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(headerBytes, &rawMap); err != nil {
		return nil, nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	var metadata map[string]string
	if raw, ok := rawMap[metadataKey]; ok {
		if err := json.Unmarshal(raw, &metadata); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		delete(rawMap, metadataKey)
	}

	infos := make(map[string]tensorHeader, len(rawMap))
	var dataSize int64
	for name, raw := range rawMap {
		var info tensorHeader
		if err := json.Unmarshal(raw, &info); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal tensor %s: %w", name, err)
		}
		if info.DType != dtypeF32 {
			return nil, nil, fmt.Errorf("tensor %q: %w: %s", name, ErrUnsupportedDType, info.DType)
		}
		if info.DataOffsets[0] < 0 || info.DataOffsets[1] < info.DataOffsets[0] {
			return nil, nil, fmt.Errorf("tensor %q: %w: %v", name, ErrNegativeOffset, info.DataOffsets)
		}
		infos[name] = info
		if info.DataOffsets[1] > dataSize {
			dataSize = info.DataOffsets[1]
		}
	}

	data := make([]byte, dataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOutOfBounds, err)
	}

	tensors := make(map[string]Tensor, len(infos))
	for name, info := range infos {
		t, err := decodeTensor(info, data)
		if err != nil {
			return nil, nil, fmt.Errorf("tensor %q: %w", name, err)
		}
		tensors[name] = t
	}
	return tensors, metadata, nil
}

func decodeTensor(info tensorHeader, data []byte) (Tensor, error) {
	shape := make([]int, len(info.Shape))
	n := 1
	for i, d := range info.Shape {
		if d < 0 || d > math.MaxInt32 {
			return Tensor{}, fmt.Errorf("%w: dimension %d", ErrShapeMismatch, d)
		}
		if d > 0 && n > math.MaxInt/4/int(d) {
			return Tensor{}, fmt.Errorf("%w: shape %v overflows", ErrShapeMismatch, info.Shape)
		}
		shape[i] = int(d)
		n *= int(d)
	}

	start, end := info.DataOffsets[0], info.DataOffsets[1]
	if end-start != int64(n*4) {
		return Tensor{}, fmt.Errorf("%w: shape %v needs %d bytes, range holds %d",
			ErrShapeMismatch, shape, n*4, end-start)
	}

	values := make([]float32, n)
	if err := binary.Read(bytes.NewReader(data[start:end]), binary.LittleEndian, values); err != nil {
		return Tensor{}, fmt.Errorf("failed to decode data: %w", err)
	}
	return Tensor{Shape: shape, Data: values}, nil
}
