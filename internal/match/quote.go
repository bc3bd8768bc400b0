package match

// smartQuotes maps each typographic quote to its counterpart. Openers scan
// forward, closers scan backward.
var smartQuotes = map[rune]struct {
	partner rune
	forward bool
}{
	'“': {'”', true},  // “ -> ”
	'”': {'“', false}, // ” -> “
	'‘': {'’', true},  // ‘ -> ’
	'’': {'‘', false}, // ’ -> ‘
}

// resolveQuote matches the quote character at rune offset ch on a single
// line. It never crosses lines. Returns false when the character is not a
// quote or has no partner, letting the caller fall through to the bracket
// fallback.
func resolveQuote(line string, ch int) (int, bool) {
	runes := []rune(line)
	if ch < 0 || ch >= len(runes) {
		return 0, false
	}

	c := runes[ch]
	switch c {
	case '\'', '"', '`':
		return resolveSimpleQuote(runes, ch, c)
	}

	if sq, ok := smartQuotes[c]; ok {
		if sq.forward {
			for i := ch + 1; i < len(runes); i++ {
				if runes[i] == sq.partner {
					return i, true
				}
			}
		} else {
			for i := ch - 1; i >= 0; i-- {
				if runes[i] == sq.partner {
					return i, true
				}
			}
		}
		return 0, false
	}

	return 0, false
}

// resolveSimpleQuote pairs occurrences of one quote rune on the line.
// Occurrences are indexed left to right; even indexes are openers pairing
// with the next occurrence, odd indexes pair with the previous one.
// Escaped quotes are not occurrences at all; backticks have no escape.
func resolveSimpleQuote(runes []rune, ch int, quote rune) (int, bool) {
	var occ []int
	self := -1
	for i, r := range runes {
		if r != quote {
			continue
		}
		if quote != '`' && escaped(runes, i) {
			continue
		}
		if i == ch {
			self = len(occ)
		}
		occ = append(occ, i)
	}

	// The cursor sits on an escaped quote: not a pair member.
	if self < 0 {
		return 0, false
	}

	if self%2 == 0 {
		if self+1 < len(occ) {
			return occ[self+1], true
		}
		return 0, false
	}
	return occ[self-1], true
}

// escaped reports whether the rune at i is preceded by an unescaped
// backslash, i.e. by an odd-length run of backslashes.
func escaped(runes []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && runes[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
