// Package testutil builds throwaway monorepo workspaces and a scriptable fake
// package manager for tests.
package testutil
