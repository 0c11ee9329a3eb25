// Package compression decodes response bodies sent with a Content-Encoding.
package compression

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"io"
	"strings"

	"github.com/WhileEndless/go-sbnet/pkg/errors"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// CompressionType represents supported compression algorithms
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionDeflate
	CompressionBrotli
	CompressionZstd
	CompressionUnknown
)

// DetectCompression detects compression type from a Content-Encoding value.
// Anything unrecognised maps to CompressionUnknown.
func DetectCompression(contentEncoding string) CompressionType {
	encoding := strings.ToLower(strings.TrimSpace(contentEncoding))

	switch encoding {
	case "gzip", "x-gzip":
		return CompressionGzip
	case "deflate", "x-deflate":
		return CompressionDeflate
	case "br", "brotli":
		return CompressionBrotli
	case "zstd", "zstandard":
		return CompressionZstd
	case "identity", "":
		return CompressionNone
	default:
		return CompressionUnknown
	}
}

// String returns the Content-Encoding token for the type
func (ct CompressionType) String() string {
	switch ct {
	case CompressionGzip:
		return "gzip"
	case CompressionDeflate:
		return "deflate"
	case CompressionBrotli:
		return "br"
	case CompressionZstd:
		return "zstd"
	case CompressionNone:
		return "identity"
	default:
		return "unknown"
	}
}

// Decompress decompresses data based on the compression type
func Decompress(data []byte, compressionType CompressionType) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	switch compressionType {
	case CompressionGzip:
		return decompressGzip(data)
	case CompressionDeflate:
		return decompressDeflate(data)
	case CompressionBrotli:
		return decompressBrotli(data)
	case CompressionZstd:
		return decompressZstd(data)
	case CompressionNone:
		return data, nil
	default:
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"unsupported compression type", "decompress", nil)
	}
}

// DecodeContent decodes data according to a Content-Encoding header value.
// A comma separated list is undone right to left, as the encodings were applied.
func DecodeContent(data []byte, contentEncoding string) ([]byte, error) {
	codings := strings.Split(contentEncoding, ",")

	out := data
	for i := len(codings) - 1; i >= 0; i-- {
		ct := DetectCompression(codings[i])
		if ct == CompressionUnknown {
			return nil, errors.NewError(errors.ErrorTypeCompressionError,
				"unsupported content encoding: "+strings.TrimSpace(codings[i]), "decodeContent", nil)
		}

		var err error
		out, err = Decompress(out, ct)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// decompressGzip decompresses gzip data
func decompressGzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to create gzip reader: "+err.Error(), "decompressGzip", nil)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to decompress gzip data: "+err.Error(), "decompressGzip", nil)
	}

	return decompressed, nil
}

// decompressDeflate decompresses raw deflate data
func decompressDeflate(data []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to decompress deflate data: "+err.Error(), "decompressDeflate", nil)
	}

	return decompressed, nil
}

// decompressBrotli decompresses brotli data
func decompressBrotli(data []byte) ([]byte, error) {
	reader := brotli.NewReader(bytes.NewReader(data))

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to decompress brotli data: "+err.Error(), "decompressBrotli", nil)
	}

	return decompressed, nil
}

// decompressZstd decompresses zstd data
func decompressZstd(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to create zstd reader: "+err.Error(), "decompressZstd", nil)
	}
	defer decoder.Close()

	decompressed, err := io.ReadAll(decoder)
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to decompress zstd data: "+err.Error(), "decompressZstd", nil)
	}

	return decompressed, nil
}
