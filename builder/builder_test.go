// Package builder_test contains functional tests for the lattice builders,
// verifying counts, numbering, labels and the template round trip.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nv4dll-git/OpenPNM/builder"
	"github.com/nv4dll-git/OpenPNM/core"
)

// TestCubic_Functional runs table-driven checks on lattice sizes.
func TestCubic_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shape [3]int
		wantP int
		wantT int
	}{
		{"1x1x1", [3]int{1, 1, 1}, 1, 0},
		{"3x1x1", [3]int{3, 1, 1}, 3, 2},
		{"1x10x10", [3]int{1, 10, 10}, 100, 180},
		{"3x3x3", [3]int{3, 3, 3}, 27, 54},
		{"2x3x4", [3]int{2, 3, 4}, 24, 1*3*4 + 2*2*4 + 2*3*3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := builder.Cubic(tt.shape, 1e-4)
			require.NoError(t, err)
			require.Equal(t, tt.wantP, net.Np())
			require.Equal(t, tt.wantT, net.Nt())
			require.Len(t, net.Clusters(), 1, "lattice must be connected")
		})
	}
}

func TestCubic_NumberingAndCoords(t *testing.T) {
	net, err := builder.Cubic([3]int{2, 2, 1}, 2.0)
	require.NoError(t, err)

	// index = x*ny*nz + y*nz + z
	require.Equal(t, [][3]float64{
		{1, 1, 1}, // (0,0,0)
		{1, 3, 1}, // (0,1,0)
		{3, 1, 1}, // (1,0,0)
		{3, 3, 1}, // (1,1,0)
	}, net.Coords())
	// x-throats first, then y-throats.
	require.Equal(t, [][2]int{{0, 2}, {1, 3}, {0, 1}, {2, 3}}, net.Conns())
}

func TestCubic_Labels(t *testing.T) {
	net, err := builder.Cubic([3]int{1, 10, 10}, 1e-5)
	require.NoError(t, err)

	left, err := net.Pores(core.ModeOr, "left")
	require.NoError(t, err)
	require.Len(t, left, 10)
	for _, p := range left {
		require.Equal(t, 0, (p/10)%10, "left pores sit at y=0")
	}
	right, err := net.Pores(core.ModeOr, "right")
	require.NoError(t, err)
	require.Len(t, right, 10)

	front, _ := net.Pores(core.ModeOr, "front")
	back, _ := net.Pores(core.ModeOr, "back")
	require.Len(t, front, 100, "single x-layer: every pore is on both x faces")
	require.Equal(t, front, back)

	internal, err := net.Pores(core.ModeOr, builder.LabelInternal)
	require.NoError(t, err)
	require.Empty(t, internal)

	cube, err := builder.Cubic([3]int{3, 3, 3}, 1)
	require.NoError(t, err)
	internal, err = cube.Pores(core.ModeOr, builder.LabelInternal)
	require.NoError(t, err)
	require.Equal(t, []int{13}, internal)
	surface, _ := cube.Pores(core.ModeOr, builder.LabelSurface)
	require.Len(t, surface, 26)
}

func TestCubic_Options(t *testing.T) {
	net, err := builder.Cubic([3]int{2, 1, 1}, 0, builder.WithName("aniso"),
		builder.WithAnisotropicSpacing([3]float64{1, 2, 3}), builder.WithoutLabels())
	require.NoError(t, err)
	require.Equal(t, "aniso", net.Name())
	require.Equal(t, [][3]float64{{0.5, 1, 1.5}, {1.5, 1, 1.5}}, net.Coords())
	require.False(t, net.Has("pore.left"))

	require.Panics(t, func() { builder.WithName("") })
	require.Panics(t, func() { builder.WithAnisotropicSpacing([3]float64{1, 0, 1}) })
}

func TestCubic_Errors(t *testing.T) {
	_, err := builder.Cubic([3]int{0, 1, 1}, 1)
	require.ErrorIs(t, err, builder.ErrTooFewPores)

	_, err = builder.Cubic([3]int{1, 1, 1}, -1)
	require.ErrorIs(t, err, builder.ErrBadSpacing)
}

func TestTemplate_RoundTrip(t *testing.T) {
	image := [][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
		{{9, 10}, {11, 12}},
	}
	net, err := builder.Template(image, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 12, net.Np())

	vals, err := net.Get(builder.KeyValues)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, vals)

	back, err := builder.AsArray(net, vals)
	require.NoError(t, err)
	require.Equal(t, image, back)

	idx, err := builder.AsArray(net, nil)
	require.NoError(t, err)
	require.Equal(t, 5.0, idx[1][0][1])
}

func TestTemplate2D(t *testing.T) {
	net, err := builder.Template2D([][]float64{{0, 1, 0}, {1, 1, 1}}, 1)
	require.NoError(t, err)
	require.Equal(t, 6, net.Np())
	require.Equal(t, 2*3-2+2*3-3, net.Nt())
	top, _ := net.Pores(core.ModeOr, "top")
	bottom, _ := net.Pores(core.ModeOr, "bottom")
	require.Equal(t, top, bottom, "a 2-D template has one z-layer")
}

func TestTemplate_Errors(t *testing.T) {
	_, err := builder.Template(nil, 1)
	require.ErrorIs(t, err, builder.ErrBadImage)

	_, err = builder.Template([][][]float64{{{1}, {2, 3}}}, 1)
	require.ErrorIs(t, err, builder.ErrBadImage)

	net, err := builder.Cubic([3]int{2, 2, 2}, 1)
	require.NoError(t, err)
	_, err = builder.AsArray(net, []float64{1})
	require.ErrorIs(t, err, core.ErrLengthMismatch)

	odd, err := core.NewNetwork("odd", [][3]float64{{0, 0, 0}, {1, 1, 0}}, [][2]int{{0, 1}})
	require.NoError(t, err)
	_, err = builder.AsArray(odd, nil)
	require.ErrorIs(t, err, builder.ErrNotLattice)
}
