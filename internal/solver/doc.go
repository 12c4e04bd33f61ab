// Package solver computes the maximum feasible motor torque at a given
// shaft speed under three independent dq-plane constraints:
//
//   - current circle: i_d² + i_q² ≤ Imax²
//   - voltage ellipse: v_d² + v_q² ≤ Vmax² under the steady-state
//     dq voltage equations
//   - supply power hyperbola (motoring only): copper loss plus shaft
//     power bounded by the supply cap
//
// Torque comes purely from i_q; a negative field-weakening i_d trades
// current budget for voltage headroom at speed. The joint optimum over
// (i_d, i_q) has no single closed form across all three surfaces, so
// [Solver.MaxTorque] runs a fixed uniform grid over i_d and solves each
// constraint's closed-form quadratic in i_q per sample.
//
// Negative discriminants are handled asymmetrically on purpose: a
// non-real voltage root leaves the voltage bound non-binding, while a
// non-real power root zeroes the power bound. This reproduces the
// established behavior of the tool; do not "fix" it.
package solver
