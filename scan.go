package numparse

// Low-level cursor scanners. Each takes the input and a byte offset and
// returns the offset of the first byte it did not consume. None of them
// allocate.

// imaginaryUnit is the case-insensitive marker for the imaginary part of
// a complex literal.
const imaginaryUnit = 'i'

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func skipSpace(s string, p int) int {
	for p < len(s) && isSpace(s[p]) {
		p++
	}
	return p
}

// scanSign consumes at most one leading '+' or '-' after skipping
// whitespace. It reports +1, -1, or 0 when no sign is present (not an
// error; the cursor is then left after any skipped whitespace).
func scanSign(s string, p int) (sign int, next int) {
	p = skipSpace(s, p)
	if p < len(s) {
		switch s[p] {
		case '+':
			return 1, p + 1
		case '-':
			return -1, p + 1
		}
	}
	return 0, p
}

// scanImaginaryUnit recognizes the imaginary-unit marker after skipping
// whitespace. Without a marker it reports KindReal and leaves the cursor
// after the skipped whitespace.
func scanImaginaryUnit(s string, p int) (PartKind, int) {
	p = skipSpace(s, p)
	if p < len(s) && lower(s[p]) == imaginaryUnit {
		return KindImaginary, p + 1
	}
	return KindReal, p
}

// byteUnitPrefixes orders the decimal magnitude prefixes: index i maps to
// an exponent of (i+1)*3.
const byteUnitPrefixes = "kMGTPEZY"

// scanMemoryUnit recognizes an optional case-insensitive magnitude prefix
// followed by a mandatory 'B'. ok is false when the trailing 'B' is
// missing, even if a prefix letter matched; the caller must then keep its
// original cursor rather than the tentatively advanced one.
func scanMemoryUnit(s string, p int) (magnitude int, next int, ok bool) {
	p = skipSpace(s, p)
	mag := 0
	for i := 0; i < len(byteUnitPrefixes); i++ {
		if p < len(s) && lower(s[p]) == lower(byteUnitPrefixes[i]) {
			mag = (i + 1) * 3
			p++
			break
		}
	}
	if p < len(s) && lower(s[p]) == 'b' {
		return mag, p + 1, true
	}
	return 0, 0, false
}

// scanFloat finds the longest prefix of s starting at p that forms a
// valid floating-point literal in the strtod grammar: an optional sign,
// then "inf"/"infinity"/"nan", a hexadecimal float, or a decimal with an
// optional exponent. It returns the literal in a form strconv.ParseFloat
// accepts (hex floats gain a "p0" exponent when the text carries none)
// along with the end cursor; end == p means no valid prefix. Hexadecimal
// forms are recognized only when hexOK is set.
func scanFloat(s string, p int, hexOK bool) (lit string, end int) {
	i := p
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	// inf, infinity, and nan, case-insensitively
	if n := foldPrefixLen(s[i:], "infinity"); n >= 3 {
		if n < len("infinity") {
			n = 3 // "inf" alone
		}
		return s[p : i+n], i + n
	}
	if foldPrefixLen(s[i:], "nan") == 3 {
		return s[p : i+3], i + 3
	}

	if hexOK && i+1 < len(s) && s[i] == '0' && lower(s[i+1]) == 'x' {
		j := i + 2
		mant := 0
		for j < len(s) && isHexDigit(s[j]) {
			j++
			mant++
		}
		if j < len(s) && s[j] == '.' {
			j++
			for j < len(s) && isHexDigit(s[j]) {
				j++
				mant++
			}
		}
		if mant == 0 {
			// "0x" with no digits: the longest valid prefix is the "0"
			return s[p : i+1], i + 1
		}
		if k, ok := scanExponent(s, j, 'p'); ok {
			return s[p:k], k
		}
		// strconv requires the binary exponent strtod makes optional
		return s[p:j] + "p0", j
	}

	j := i
	digits := 0
	for j < len(s) && isDigit(s[j]) {
		j++
		digits++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
	}
	if digits == 0 {
		return "", p
	}
	if k, ok := scanExponent(s, j, 'e'); ok {
		return s[p:k], k
	}
	return s[p:j], j
}

// scanExponent consumes an exponent introduced by marker ('e' or 'p',
// case-insensitive): the marker, an optional sign, and at least one
// decimal digit. Without a digit nothing is consumed, so "5e+" parses as
// "5" with "e+" left over.
func scanExponent(s string, p int, marker byte) (end int, ok bool) {
	k := p
	if k >= len(s) || lower(s[k]) != marker {
		return p, false
	}
	k++
	if k < len(s) && (s[k] == '+' || s[k] == '-') {
		k++
	}
	d := k
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	if k == d {
		return p, false
	}
	return k, true
}

// foldPrefixLen reports how many leading bytes of s case-insensitively
// match pat.
func foldPrefixLen(s, pat string) int {
	n := 0
	for n < len(s) && n < len(pat) && lower(s[n]) == lower(pat[n]) {
		n++
	}
	return n
}
