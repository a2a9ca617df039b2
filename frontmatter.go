package mdview

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var (
	frontMatterOpen   = []byte("---")
	frontMatterClose  = []byte("...")
	utf8ByteOrderMark = []byte{0xEF, 0xBB, 0xBF}
)

// splitFrontMatter detaches a leading YAML front matter block. The block
// must start with a "---" line at the very top of the document and end with
// a "---" or "..." line. Input without front matter passes through with nil
// metadata, and a block that does not decode as YAML is treated as content,
// not an error.
func splitFrontMatter(src []byte) (map[string]any, []byte) {
	body := bytes.TrimPrefix(src, utf8ByteOrderMark)
	first, rest, ok := nextLine(body)
	if !ok || !isDelimiterLine(first, frontMatterOpen) {
		return nil, src
	}

	var block bytes.Buffer
	for {
		line, next, more := nextLine(rest)
		if !more {
			// Unterminated front matter is plain content.
			return nil, src
		}
		if isDelimiterLine(line, frontMatterOpen) || isDelimiterLine(line, frontMatterClose) {
			meta := map[string]any{}
			if err := yaml.Unmarshal(block.Bytes(), &meta); err != nil {
				return nil, src
			}
			return meta, next
		}
		block.Write(line)
		block.WriteByte('\n')
		rest = next
	}
}

func nextLine(b []byte) (line, rest []byte, ok bool) {
	if len(b) == 0 {
		return nil, nil, false
	}
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i], b[i+1:], true
	}
	return b, nil, true
}

// isDelimiterLine reports whether the line is exactly the delimiter, with
// trailing whitespace or a carriage return tolerated.
func isDelimiterLine(line, delim []byte) bool {
	return bytes.Equal(bytes.TrimRight(line, " \t\r"), delim)
}
