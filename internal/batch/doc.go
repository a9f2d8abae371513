// Package batch runs one operation over many items on a bounded worker pool.
//
// A failing item never stops the others: every item is attempted and the
// Result lists each failure by name.
package batch
