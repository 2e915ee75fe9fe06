// Package types defines the shared vocabulary of inikit: the typed error
// taxonomy, sizing limits, and parse options.
//
// Design goals:
//   - Every failure carries a stable category and the byte offset at which
//     it was detected, so callers can branch on intent rather than text.
//   - Library code never exits the process; the top-level caller decides.
//   - Zero-value options are usable.
package types
