package peerscore

import (
	"reflect"
	"testing"
)

func TestSplitColumns(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{
			"A,B,C",
			[]string{"A", "B", "C"},
		}, {
			"A, B , AA",
			[]string{"A", " B ", " AA"},
		}, {
			"A,,B",
			[]string{"A", "", "B"},
		}, {
			"A,B,",
			[]string{"A", "B"},
		}, {
			"A、B",
			[]string{"A", "B"},
		}, {
			"Ａ，Ｂ，ＡＣ",
			[]string{"A", "B", "AC"},
		}, {
			"A",
			[]string{"A"},
		},
	}

	for _, tc := range cases {
		res := splitColumns(tc.in)
		if !reflect.DeepEqual(res, tc.out) {
			t.Errorf("splitColumns(%q) -> %#v, expected %#v", tc.in, res, tc.out)
		}
	}
}
