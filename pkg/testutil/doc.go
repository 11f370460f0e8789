// Package testutil provides utilities for testing archup components.
//
// Key components:
//   - CommandRecorder: command.Runner that captures calls instead of
//     executing them, with scriptable failures and outputs
//   - File helpers for seeding temp homes with dotfiles layouts
//
// Usage guidelines:
//   - Step tests should run against the CommandRecorder and an afero
//     filesystem; only link materialization tests touch a real temp dir
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
