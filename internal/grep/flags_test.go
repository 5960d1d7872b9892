package grep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Flags
	}{
		{
			name:   "no tokens",
			tokens: nil,
			want:   Flags{},
		},
		{
			name:   "single token",
			tokens: []string{"-n"},
			want:   Flags{LineNumbers: true},
		},
		{
			name:   "all tokens",
			tokens: []string{"-n", "-l", "-i", "-v", "-x"},
			want: Flags{
				LineNumbers:     true,
				FilenamesOnly:   true,
				CaseInsensitive: true,
				InvertMatch:     true,
				MatchEntireLine: true,
			},
		},
		{
			name:   "order does not matter",
			tokens: []string{"-x", "-i"},
			want:   Flags{CaseInsensitive: true, MatchEntireLine: true},
		},
		{
			name:   "unrecognized tokens are ignored",
			tokens: []string{"-z", "--frobnicate", "-n", ""},
			want:   Flags{LineNumbers: true},
		},
		{
			name:   "repeated tokens are idempotent",
			tokens: []string{"-v", "-v"},
			want:   Flags{InvertMatch: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFlags(tt.tokens))
		})
	}
}
