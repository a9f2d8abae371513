// Package scripts builds the namespaced root script table.
//
// Every script of a sub-project manifest becomes "{namespace}:{name}" with
// its command prefixed by a cd into the sub-project. Aggregate scripts fan
// out to a subset of those entries through a concurrent process runner.
package scripts
