// Package solver solves the sparse linear systems produced by transport
// assembly.
//
// A solve is described by Settings: a family (the module's own kernels or
// gonum), a type (direct, cg, bicgstab), a preconditioner for iterative
// types, a relative-residual tolerance and an iteration cap. Solve dispatches
// on those settings, honors context cancellation between iterations, and
// reports a Report with the iteration count, final residual and duration.
//
// Convergence is measured as ‖b − A·x‖ / ‖b‖. A zero right-hand side yields
// the zero vector without iterating.
package solver
