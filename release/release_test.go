package release_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nv4dll-git/OpenPNM/release"
)

func TestBumpKind(t *testing.T) {
	tests := []struct {
		msg  string
		want release.Kind
	}{
		{"fix typo", release.None},
		{"fix solver tolerance #patch", release.Patch},
		{"add OhmicConduction #minor", release.Minor},
		{"drop python api #MAJOR", release.Major},
		{"#patch and #minor together", release.Minor},
		{"#major #patch", release.Major},
		{"patch without hash", release.None},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			require.Equal(t, tt.want, release.BumpKind(tt.msg))
		})
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		in   string
		kind release.Kind
		want string
	}{
		{"1.2.3", release.Patch, "1.2.4"},
		{"1.2.3", release.Minor, "1.3.0"},
		{"1.2.3", release.Major, "2.0.0"},
		{"v0.9.9", release.Minor, "v0.10.0"},
		{"2.0.0-rc.1", release.Patch, "2.0.1"},
		{"1.2.3\n", release.None, "1.2.3"},
	}
	for _, tt := range tests {
		got, err := release.Bump(tt.in, tt.kind)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, "%s %s", tt.in, tt.kind)
	}

	for _, bad := range []string{"", "1.2", "v1", "one.two.three", "1.2.3.4"} {
		_, err := release.Bump(bad, release.Patch)
		require.ErrorIs(t, err, release.ErrBadVersion, bad)
	}
	require.Equal(t, "minor", release.Minor.String())
	require.Equal(t, "Kind(9)", release.Kind(9).String())
}
