package jsonfile

import (
	"bytes"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// objectKey unescapes a member name from its raw token text, which may carry
// leading whitespace and a comma. The token must already have been accepted
// by the decoder.
//
// encoding/json maps every unpaired surrogate escape to U+FFFD, which would
// fold "\ud800" and "\udc00" into one key. Here an unpaired surrogate is kept
// as its own three-byte sequence instead. Those bytes never occur in valid
// UTF-8, so they cannot collide with any other key. Paired escapes and all
// other text decode to the same string encoding/json produces.
func objectKey(raw []byte) string {
	raw = raw[bytes.IndexByte(raw, '"')+1 : len(raw)-1]

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}

		if raw[i+1] != 'u' {
			out = append(out, unescape(raw[i+1]))
			i += 2
			continue
		}

		r := hex4(raw[i+2 : i+6])
		i += 6

		if !utf16.IsSurrogate(r) {
			out = utf8.AppendRune(out, r)
			continue
		}

		if r < 0xdc00 && i+6 <= len(raw) && raw[i] == '\\' && raw[i+1] == 'u' {
			if low := hex4(raw[i+2 : i+6]); low >= 0xdc00 && low <= 0xdfff {
				out = utf8.AppendRune(out, utf16.DecodeRune(r, low))
				i += 6
				continue
			}
		}

		out = append(out, byte(0xe0|r>>12), byte(0x80|(r>>6)&0x3f), byte(0x80|r&0x3f))
	}

	return string(out)
}

func hex4(b []byte) rune {
	v, _ := strconv.ParseUint(string(b), 16, 32)
	return rune(v)
}

func unescape(c byte) byte {
	switch c {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}

	// '"', '\\' and '/' stand for themselves.
	return c
}
