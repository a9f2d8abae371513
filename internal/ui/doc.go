// Package ui renders terminal output for bulk operations and listings.
package ui
