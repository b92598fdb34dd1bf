package sanitize

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<b>Bold</b> move", "Bold move"},
		{"<script>alert(1)</script>Hello", "Hello"},
		{"Fish &amp; Chips", "Fish & Chips"},
		{"&lt;img src=x onerror=alert(1)&gt;ok", "ok"},
		{"  padded  ", "padded"},
		{"5 < 6 and 7 > 3", "5 < 6 and 7 > 3"},
	}
	for _, tc := range cases {
		if got := StripHTML(tc.in); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestLineCollapsesWhitespace(t *testing.T) {
	if got := Line("Sunshine\n  <i>Bakery</i>\tLLC"); got != "Sunshine Bakery LLC" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestTextPtr(t *testing.T) {
	if TextPtr(nil) != nil {
		t.Fatal("expected nil")
	}
	in := "<p>note</p>"
	if got := TextPtr(&in); got == nil || *got != "note" {
		t.Fatalf("unexpected %v", got)
	}
}
