package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(202) 456-1111", "+12024561111"},
		{" 202.456.1111 ", "+12024561111"},
		{"call me", "call me"},
		{"12345", "12345"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeE164(tc.in); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFormatNational(t *testing.T) {
	if got := FormatNational("+12024561111"); got != "(202) 456-1111" {
		t.Fatalf("unexpected national format %q", got)
	}
	if got := FormatNational(" n/a "); got != "n/a" {
		t.Fatalf("unexpected passthrough %q", got)
	}
}
