// Package algorithms runs steady-state transport through a pore network.
//
// A transport algorithm pairs a network with a phase. It solves the
// conservation equation
//
//	Σ_j g_ij (x_i − x_j) = q_i + S_i(x_i)
//
// for one pore-level quantity x, where g is a throat conductance computed by
// physics, q are specified rates and S are reactive source terms.
//
// The lifecycle is:
//
//  1. Construct a kind (FickianDiffusion, StokesFlow, OhmicConduction,
//     FourierConduction) or a GenericTransport with custom keys.
//  2. Register boundary conditions with SetValueBC and SetRateBC, and
//     optionally source terms with SetSourceTerm. The last write for a pore
//     wins.
//  3. Call Run(ctx) to assemble and solve the linear system; the field is
//     stored in the algorithm's own result store under the quantity name
//     (e.g. "pore.concentration").
//  4. Read the field with Get, compute boundary rates with Rate, and derive
//     bulk coefficients with CalcEffectiveDiffusivity,
//     CalcEffectivePermeability or CalcEffectiveConductivity.
//
// Algorithms are safe for concurrent use; several algorithms may share one
// network and phase and run concurrently, as they only read from them.
package algorithms
