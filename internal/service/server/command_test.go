package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveListenAddress covers override precedence and port extraction.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		configAddr string
		override   string
		want       string
		wantErr    bool
	}{
		{
			name:       "override wins over config",
			configAddr: "console.example.com:8080",
			override:   ":9090",
			want:       ":9090",
		},
		{
			name:       "port extracted from config address",
			configAddr: "console.example.com:8080",
			want:       ":8080",
		},
		{
			name:       "port only config address",
			configAddr: ":7000",
			want:       ":7000",
		},
		{
			name:    "missing config address",
			wantErr: true,
		},
		{
			name:       "config address without port",
			configAddr: "console.example.com",
			wantErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveListenAddress(tc.configAddr, tc.override)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
