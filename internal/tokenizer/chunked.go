package tokenizer

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// maxChunkSizeDigits bounds a chunk-size so the value fits in an int64.
const maxChunkSizeDigits = 15

// parseChunkSizeLine parses "hex-size [;ext] [OWS]" from a chunk-size line.
// The line ending must already be stripped. Chunk extensions are ignored.
func parseChunkSizeLine(line []byte) (int64, error) {
	if semi := bytes.IndexByte(line, ';'); semi >= 0 {
		line = line[:semi]
	}
	line = bytes.TrimRight(line, " \t")
	if len(line) > maxChunkSizeDigits {
		return 0, fmt.Errorf("chunk size %q too large", line)
	}
	return parseHexSize(line)
}

// parseHexSize parses a hex string into an integer.
func parseHexSize(s []byte) (int64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty hex string")
	}
	var n int64
	for _, c := range s {
		n <<= 4
		switch {
		case c >= '0' && c <= '9':
			n |= int64(c - '0')
		case c >= 'a' && c <= 'f':
			n |= int64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n |= int64(c-'A') + 10
		default:
			return 0, hex.InvalidByteError(c)
		}
	}
	return n, nil
}
