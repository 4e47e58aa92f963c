// Package builder provides deterministic constructors for pore networks.
//
// The package offers:
//
//   - Cubic(shape, spacing, ...): a regular lattice with 6-connectivity
//     (each pore joined to its axis neighbors).
//   - Template(image, spacing, ...): a lattice with one pore per voxel of a
//     2-D or 3-D image; voxel values are stored in "pore.values".
//   - AsArray(net, values): projects a per-pore array back onto the voxel
//     grid (the inverse of Template for lattice networks).
//
// Indexing and labels:
//
//	pore index   = x·(ny·nz) + y·nz + z          (row-major over x, y, z)
//	coordinates  = (x+0.5, y+0.5, z+0.5) · spacing
//	front/back   = x min / x max
//	left/right   = y min / y max
//	bottom/top   = z min / z max
//	surface      = any of the six faces; internal = the rest
//
// Throats are emitted axis by axis (x, then y, then z), each in ascending
// pore order, so the same inputs always produce the same numbering.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewPores, ErrBadSpacing, ErrBadImage) for invalid
//     build parameters, wrapped with the method name.
package builder
