// Package persistence saves and restores state interface values across
// simulator runs.
//
// A Snapshot is written as YAML. On the next start ApplyInitialValues seeds
// the initial_value of every matching state interface in the hardware
// description, so components come up where the previous run left off.
package persistence
