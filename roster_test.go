package peerscore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	xunicode "golang.org/x/text/encoding/unicode"
)

func TestReadRoster(t *testing.T) {
	in := "张三\r\n李四\n\n  王五  \n张三\n"

	roster, err := ReadRoster(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Roster{"张三", "李四", "王五"}, roster)
}

func TestReadRosterUTF8BOM(t *testing.T) {
	roster, err := ReadRoster(strings.NewReader("\ufeff张三\n李四\n"))
	require.NoError(t, err)
	assert.Equal(t, Roster{"张三", "李四"}, roster)
}

func TestReadRosterUTF16(t *testing.T) {
	enc := xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM).NewEncoder()
	bs, err := enc.Bytes([]byte("张三\r\n李四\r\n"))
	require.NoError(t, err)

	roster, err := ReadRoster(bytes.NewReader(bs))
	require.NoError(t, err)
	assert.Equal(t, Roster{"张三", "李四"}, roster)
}

func TestReadRosterGBK(t *testing.T) {
	bs, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("张三\r\n李四\r\n"))
	require.NoError(t, err)
	require.False(t, strings.Contains(string(bs), "张"))

	roster, err := ReadRoster(bytes.NewReader(bs))
	require.NoError(t, err)
	assert.Equal(t, Roster{"张三", "李四"}, roster)
}

func TestReadRosterNormalizes(t *testing.T) {
	// "é" as e + combining acute accent.
	roster, err := ReadRoster(strings.NewReader("Rene\u0301\n"))
	require.NoError(t, err)
	assert.Equal(t, Roster{"Ren\u00e9"}, roster)
}

func TestOpenRosterNotFound(t *testing.T) {
	_, err := OpenRoster(filepath.Join(t.TempDir(), "namelist.txt"))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namelist.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice\nBob\n"), 0o644))

	roster, err := OpenRoster(path)
	require.NoError(t, err)
	assert.Equal(t, Roster{"Alice", "Bob"}, roster)
}

func TestRosterCheck(t *testing.T) {
	roster := Roster{"Alice", "Bob", "Carol"}

	rep := roster.Check([]string{"Alice", " Bob", "Dave"})
	assert.False(t, rep.OK())
	assert.Equal(t, []string{"Dave"}, rep.Unknown)
	assert.Equal(t, []string{"Carol"}, rep.Missing)
	assert.Equal(t, "not on roster: Dave; never rated: Carol", rep.Error())

	rep = roster.Check([]string{"Carol", "Bob", "Alice"})
	assert.True(t, rep.OK())
}
