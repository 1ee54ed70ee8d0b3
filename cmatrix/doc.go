// Package cmatrix provides the dense complex linear-algebra kernels (L2)
// backing the admittance-matrix assembly and Kron reduction used by package
// network.
//
// Generalized from the teacher's (lvlath/matrix) real-valued Dense storage
// and Doolittle LU/Inverse kernels to complex128, with a row-major flat
// slice as the sole backing store for both assembly and reduction — there is
// no separate sparse CSC representation (see DESIGN.md's cmatrix entry for
// why the spec's sparse-LU numerical choice was simplified to dense for this
// module's scale). No pivoting is used, trading numerical stability for
// determinism, exactly like the teacher's policy.
package cmatrix
