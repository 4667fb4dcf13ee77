package cli

import "testing"

func TestEllipsis(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Short", `"Short"`},
		{"  padded title  ", `"padded title"`},
		{"Exactly twenty chars", `"Exactly twenty chars"`},
		{"A title that runs far too long", `"A title that runs f..."`},
	}
	for _, tc := range tests {
		if got := ellipsis(tc.in); got != tc.want {
			t.Errorf("ellipsis(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
