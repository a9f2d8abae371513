// Package workspace locates the monorepo root and discovers its sub-projects.
// It provides the Context type that holds the resolved root and configuration,
// FindRoot for the upward sentinel search, and Discover for listing the
// apps/ and libs/ collections.
package workspace
