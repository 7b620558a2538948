package peerscore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Roster is the list of people expected to take part, in file order.
type Roster []string

// OpenRoster reads the roster file at path.
func OpenRoster(path string) (Roster, error) {
	fd, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Kind: KindNotFound, Op: "open roster", Err: err}
	} else if err != nil {
		return nil, &Error{Kind: KindData, Op: "open roster", Err: err}
	}
	defer fd.Close()
	return ReadRoster(fd)
}

// ReadRoster reads one name per line. The text may be UTF-8 or UTF-16 with
// a byte order mark, plain UTF-8, or GB18030 (which covers GBK). Blank
// lines and repeated names are skipped.
func ReadRoster(r io.Reader) (Roster, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Kind: KindData, Op: "read roster", Err: err}
	}

	if conv, _, err := transform.Bytes(xunicode.BOMOverride(transform.Nop), bs); err == nil {
		bs = conv
	}
	if !utf8.Valid(bs) {
		conv, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), bs)
		if err != nil {
			return nil, &Error{Kind: KindData, Op: "read roster", Err: fmt.Errorf("unknown text encoding: %w", err)}
		}
		bs = conv
	}

	var roster Roster
	seen := make(map[string]bool)
	sc := bufio.NewScanner(bytes.NewReader(bs))
	for sc.Scan() {
		name := normalizeName(sc.Text())
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		roster = append(roster, name)
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: KindData, Op: "read roster", Err: err}
	}
	return roster, nil
}

func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// RosterReport is the result of comparing rated names with the roster.
type RosterReport struct {
	// Unknown lists rated names that are not on the roster.
	Unknown []string
	// Missing lists roster names nobody rated.
	Missing []string
}

func (r RosterReport) OK() bool {
	return len(r.Unknown) == 0 && len(r.Missing) == 0
}

func (r RosterReport) Error() string {
	var parts []string
	if len(r.Unknown) > 0 {
		parts = append(parts, "not on roster: "+strings.Join(r.Unknown, ", "))
	}
	if len(r.Missing) > 0 {
		parts = append(parts, "never rated: "+strings.Join(r.Missing, ", "))
	}
	return strings.Join(parts, "; ")
}

// Check compares the rated names with the roster. Names are compared after
// trimming and Unicode normalisation.
func (r Roster) Check(names []string) RosterReport {
	var rep RosterReport
	rated := make(map[string]bool, len(names))
	for _, name := range names {
		n := normalizeName(name)
		rated[n] = true
		if !slices.Contains(r, n) {
			rep.Unknown = append(rep.Unknown, name)
		}
	}
	for _, name := range r {
		if !rated[name] {
			rep.Missing = append(rep.Missing, name)
		}
	}
	return rep
}
