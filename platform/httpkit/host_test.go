package httpkit

import "testing"

func TestSubdomainFromHost(t *testing.T) {
	cases := []struct {
		host string
		base string
		want string
	}{
		{"palmharborplaza.example.com", "", "palmharborplaza"},
		{"PalmHarborPlaza.Example.com:443", "", "palmharborplaza"},
		{"palmharborplaza.localhost:3000", "", "palmharborplaza"},
		{"corallandings.localhost", "", "corallandings"},
		{"localhost:3000", "", ""},
		{"example.com", "", ""},
		{"www.example.com", "", ""},
		{"127.0.0.1:8080", "", ""},
		{"highlandlakes.example.com", "example.com", "highlandlakes"},
		{"highlandlakes.other.com", "example.com", ""},
		{"a.b.example.com", "example.com", ""},
		{"example.com", "example.com", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		if got := SubdomainFromHost(tc.host, tc.base); got != tc.want {
			t.Fatalf("%q (base %q): expected %q, got %q", tc.host, tc.base, tc.want, got)
		}
	}
}
