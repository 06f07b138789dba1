package catalogsvc

import "testing"

func TestCoerceBooleanStrictTrueString(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"", false},
		{"TRUE", false},
		{"True", false},
		{"1", false},
		{"yes", false},
		{" true", false},
	}
	for _, c := range cases {
		if got := CoerceBooleanStrictTrueString(c.in); got != c.want {
			t.Errorf("CoerceBooleanStrictTrueString(%q) = %v, muốn %v", c.in, got, c.want)
		}
	}
}
