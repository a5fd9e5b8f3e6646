package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		in, want string
	}{
		{"teacher@fund.org", "te***@fund.org"},
		{"ab@fund.org", "***@fund.org"},
		{"broken", "***"},
		{"a@b@c", "***"},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.want, Email(tc.in), tc.in)
	}
}

func TestConstants(t *testing.T) {
	t.Parallel()
	require.Equal(t, "[REDACTED_TOKEN]", Token())
	require.Equal(t, "[REDACTED_PASSWORD]", Password())
}
