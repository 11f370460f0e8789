// Package types defines the shared interfaces used throughout archup.
// The central one is FS, the filesystem abstraction that lets steps be
// exercised against an in-memory filesystem in tests.
package types
