package peerscore

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// splitColumns splits a column list on commas and ideographic commas.
// Full-width input is folded first, so "Ａ，Ｂ" splits like "A,B".
func splitColumns(s string) []string {
	sc := bufio.NewScanner(strings.NewReader(width.Fold.String(s)))
	sc.Split(scanColumns)
	var res []string
	for sc.Scan() {
		res = append(res, sc.Text())
	}
	return res
}

func scanColumns(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for n, i := 0, 0; i < len(data); i += n {
		var r rune
		r, n = utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + n, data[:i], nil
		}
	}

	// Final, non-terminated token. A trailing separator leaves nothing
	// here and produces no token.
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ',', '、':
		return true
	default:
		return false
	}
}
