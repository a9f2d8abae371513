// Package lifecycle sequences the workspace operations: synthesizing the root
// manifest, installing dependencies, cleaning artifacts and resetting.
//
// Libraries are always installed before apps. Bulk steps run through the
// batch package and report per-project failures together.
package lifecycle
