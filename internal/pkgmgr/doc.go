// Package pkgmgr invokes the external package manager and toolchain
// binaries.
//
// Commands run to completion; output is captured and stderr is attached to
// the returned *CommandError on failure.
package pkgmgr
