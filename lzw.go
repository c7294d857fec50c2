package gifdecode

// lzwEntry is one code table slot: the code of the string without its last
// symbol, and that last symbol. Codes below the clear code are singletons and
// only use suffix.
type lzwEntry struct {
	prefix uint16
	suffix byte
}

// lzwDecoder holds the code table and output stack. Both are sized for the
// 12-bit code ceiling so decoding never grows them.
type lzwDecoder struct {
	table [MAX_CODE + 1]lzwEntry
	stack [MAX_CODE + 1]byte
}

// decode expands GIF LZW data, appending palette indices to dst. The end of
// information code, a code beyond the next table slot, or the end of src all
// end the stream; whatever was decoded up to there is returned.
//
// minCodeSize must be in [2, 8].
func (d *lzwDecoder) decode(src []byte, minCodeSize int, dst []byte) []byte {
	clearCode := 1 << minCodeSize
	eoi := clearCode + 1

	codeSize := minCodeSize + 1
	codeMask := 1<<codeSize - 1
	nextCode := clearCode + 2
	prevCode := -1
	var first byte // first symbol of the last emitted string

	for code := 0; code < clearCode; code++ {
		d.table[code] = lzwEntry{suffix: byte(code)}
	}

	var bits uint32
	var nbits int
	pos := 0
	for {
		for nbits < codeSize {
			if pos >= len(src) {
				return dst
			}
			bits |= uint32(src[pos]) << nbits
			pos++
			nbits += 8
		}
		code := int(bits) & codeMask
		bits >>= codeSize
		nbits -= codeSize

		if code > nextCode || code == eoi {
			return dst
		}
		if code == clearCode {
			codeSize = minCodeSize + 1
			codeMask = 1<<codeSize - 1
			nextCode = clearCode + 2
			prevCode = -1
			continue
		}
		if prevCode == -1 {
			// only a singleton can follow a clear code
			if code > clearCode {
				return dst
			}
			first = d.table[code].suffix
			dst = append(dst, first)
			prevCode = code
			continue
		}

		cur := code
		top := 0
		if code == nextCode {
			// the string being defined: previous string plus its own first symbol
			d.stack[top] = first
			top++
			code = prevCode
		}
		for code > clearCode {
			d.stack[top] = d.table[code].suffix
			top++
			code = int(d.table[code].prefix)
		}
		first = d.table[code].suffix
		d.stack[top] = first
		top++

		if nextCode <= MAX_CODE {
			d.table[nextCode] = lzwEntry{prefix: uint16(prevCode), suffix: first}
			nextCode++
			if nextCode&codeMask == 0 && nextCode <= MAX_CODE {
				codeSize++
				codeMask = 1<<codeSize - 1
			}
		}
		prevCode = cur

		for top > 0 {
			top--
			dst = append(dst, d.stack[top])
		}
	}
}
