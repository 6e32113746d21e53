package gollowmap

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4"
)

// Compression codecs for the snapshot block. The codec is picked on
// MapOption, the reader must use the same one the writer did.
type Compression interface {
	Encode(data []byte) []byte
	Decode(data []byte) ([]byte, error)
}

type NoCompression struct{}

func NewNoCompression() *NoCompression {
	return &NoCompression{}
}

func (c *NoCompression) Encode(data []byte) []byte {
	return data
}

func (c *NoCompression) Decode(data []byte) ([]byte, error) {
	return data, nil
}

type SnappyCompression struct{}

func NewSnappyCompression() *SnappyCompression {
	return &SnappyCompression{}
}

func (c *SnappyCompression) Encode(data []byte) []byte {
	return snappy.Encode([]byte{}, data)
}

func (c *SnappyCompression) Decode(data []byte) ([]byte, error) {
	res, err := snappy.Decode([]byte{}, data)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type ZlibCompression struct{}

func NewZlibCompression() *ZlibCompression {
	return &ZlibCompression{}
}

func (c *ZlibCompression) Encode(data []byte) []byte {
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	w.Write(data)
	w.Close()
	return b.Bytes()
}

func (c *ZlibCompression) Decode(data []byte) ([]byte, error) {
	b := bytes.NewBuffer(data)
	r, err := zlib.NewReader(b)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	out.ReadFrom(r)
	return out.Bytes(), nil
}

type S2Compression struct{}

func NewS2Compression() *S2Compression {
	return &S2Compression{}
}

func (c *S2Compression) Encode(data []byte) []byte {
	return s2.Encode(nil, data)
}

func (c *S2Compression) Decode(data []byte) ([]byte, error) {
	return s2.Decode(nil, data)
}

type LZ4Compression struct{}

func NewLZ4Compression() *LZ4Compression {
	return &LZ4Compression{}
}

func (c *LZ4Compression) Encode(data []byte) []byte {
	var b bytes.Buffer
	w := lz4.NewWriter(&b)
	w.Write(data)
	w.Close()
	return b.Bytes()
}

func (c *LZ4Compression) Decode(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	var out bytes.Buffer
	if _, err := io.Copy(&out, r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
