package gltf

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// GLB header.
type glbHeader [3]uint32

// Indices in glbHeader.
const (
	headerMagic   = 0
	headerVersion = 1
	headerLength  = 2
)

// GLB chunk.
type glbChunk [2]uint32

// Indices in glbChunk.
const (
	chunkLength = 0
	chunkType   = 1
	// Then payload.
)

const (
	// glbHeader[headerMagic].
	magic = 0x46546c67

	// glbChunk[chunkType].
	typeJSON = 0x4e4f534a
	typeBIN  = 0x004e4942
)

// IsGLB returns whether r refers to a binary glTF (version 2).
// It assumes that r was positioned accordingly.
func IsGLB(r io.Reader) bool {
	var h glbHeader
	err := binary.Read(r, binary.LittleEndian, h[:])
	switch {
	case err != nil, h[headerMagic] != magic, h[headerVersion] != 2:
		return false
	default:
		return true
	}
}

// SeekJSON seeks into r until it finds the beginning of the JSON string.
// If successful, it returns the length of the chunk.
// r must refer to an unread GLB blob.
func SeekJSON(r io.Reader) (n int, err error) {
	if !IsGLB(r) {
		err = errors.New("gltf: not a GLB blob")
		return
	}
	var c glbChunk
	err = binary.Read(r, binary.LittleEndian, c[:])
	switch {
	case err != nil:
	case c[chunkLength] == 0 || c[chunkType] != typeJSON:
		err = errors.New("gltf: invalid GLB chunk")
	default:
		n = int(c[chunkLength])
	}
	return
}

// EncodeGLB writes doc and its binary payload to w as a GLB blob:
// a 12-byte header, a space-padded JSON chunk and, when bin is non-empty,
// a zero-padded BIN chunk. Chunks align to 4 bytes.
func EncodeGLB(w io.Writer, doc *GLTF, bin []byte) error {
	if doc == nil {
		return errors.New("gltf: nil document")
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("gltf: encoding document: %w", err)
	}
	jsonData = pad(jsonData, ' ')
	binData := pad(bin, 0)

	total := uint32(12 + 8 + len(jsonData))
	if len(binData) > 0 {
		total += uint32(8 + len(binData))
	}

	h := glbHeader{}
	h[headerMagic] = magic
	h[headerVersion] = 2
	h[headerLength] = total
	if err := binary.Write(w, binary.LittleEndian, h[:]); err != nil {
		return err
	}

	c := glbChunk{}
	c[chunkLength] = uint32(len(jsonData))
	c[chunkType] = typeJSON
	if err := binary.Write(w, binary.LittleEndian, c[:]); err != nil {
		return err
	}
	if _, err := w.Write(jsonData); err != nil {
		return err
	}

	if len(binData) > 0 {
		c[chunkLength] = uint32(len(binData))
		c[chunkType] = typeBIN
		if err := binary.Write(w, binary.LittleEndian, c[:]); err != nil {
			return err
		}
		if _, err := w.Write(binData); err != nil {
			return err
		}
	}
	return nil
}

func pad(b []byte, filler byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, filler)
	}
	return b
}
