// Package manifest reads and writes package.json style manifests.
//
// Documents are handled as raw JSON so that key order and every field the
// tool does not own survive a rewrite. Only the scripts object and the
// dependency maps are ever patched.
package manifest
