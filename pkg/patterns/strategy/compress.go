package strategy

import "strings"

// Compressor is a swappable compression algorithm. The implementations
// only tag-wrap the payload; the interesting part is the interchangeability
// and the round-trip property.
type Compressor interface {
	Compress(data string) string
	Decompress(data string) string
	Format() string
}

// tagCompressor wraps payloads in [TAG]...[/TAG] markers.
type tagCompressor struct {
	tag string
}

func (c tagCompressor) Format() string { return c.tag }

func (c tagCompressor) Compress(data string) string {
	return "[" + c.tag + "]" + data + "[/" + c.tag + "]"
}

// Decompress strips the markers; data without them passes through.
func (c tagCompressor) Decompress(data string) string {
	open := "[" + c.tag + "]"
	closing := "[/" + c.tag + "]"
	if strings.HasPrefix(data, open) && strings.HasSuffix(data, closing) {
		return data[len(open) : len(data)-len(closing)]
	}
	return data
}

// Zip is the zip-flavored compressor.
func Zip() Compressor { return tagCompressor{tag: "ZIP"} }

// Rar is the rar-flavored compressor.
func Rar() Compressor { return tagCompressor{tag: "RAR"} }
