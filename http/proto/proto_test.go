package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		Token string
		Want  Protocol
	}{
		{"HTTP/1.1", HTTP11},
		{"HTTP/2.0", HTTP2},
		{"HTTP/1.0", Unknown},
		{"HTTP/2", Unknown},
		{"HTTP/3.0", Unknown},
		{"http/1.1", Unknown},
		{"HTTP/1,1", Unknown},
		{"HTTP/a.b", Unknown},
		{"", Unknown},
	} {
		require.Equal(t, tc.Want, Parse(tc.Token), tc.Token)
	}
}

func TestString(t *testing.T) {
	for _, p := range []Protocol{HTTP11, HTTP2} {
		require.Equal(t, p, Parse(p.String()))
	}

	require.Empty(t, Unknown.String())
}
