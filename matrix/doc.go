// Package matrix provides the linear-algebra kernels behind the transport
// solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with safe accessors (At/Set never panic).
//   - Factorize, an LU factorization with partial pivoting, and LU.Solve.
//   - Assembler, which stamps element contributions (A[i][j] += v, b[i] += v)
//     and compresses them into a CSR matrix with summed duplicates.
//   - CSR, a compressed sparse row matrix with MatVec and Diagonal for
//     iterative methods.
//
// Dense is best for small systems where O(n²) memory is acceptable; CSR is the
// working format for network-sized systems, whose rows hold one entry per
// neighbor plus the diagonal.
//
// All failures are reported through the sentinel errors in errors.go and can
// be matched with errors.Is.
package matrix
