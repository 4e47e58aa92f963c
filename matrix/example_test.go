// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/nv4dll-git/OpenPNM/matrix"
)

// ExampleAssembler stamps two conductances, pins the ends and solves.
func ExampleAssembler() {
	asm, _ := matrix.NewAssembler(3)
	_ = asm.StampConductance(0, 1, 1)
	_ = asm.StampConductance(1, 2, 1)
	a, b := asm.Build()

	d, _ := a.ToDense()
	// Replace rows 0 and 2 with identity rows: x0 = 1, x2 = 0.
	for j := 0; j < 3; j++ {
		_ = d.Set(0, j, 0)
		_ = d.Set(2, j, 0)
	}
	_ = d.Set(0, 0, 1)
	_ = d.Set(2, 2, 1)
	b[0], b[2] = 1, 0

	f, _ := matrix.Factorize(d)
	x, _ := f.Solve(b)
	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])
	// Output:
	// 1.00 0.50 0.00
}
