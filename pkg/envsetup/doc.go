// Package envsetup finishes the workstation after packages and
// dotfiles are in place: the node toolchain through its version
// manager, the global git identity, and the login shell.
package envsetup
