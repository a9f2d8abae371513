package manifest

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Load reads and parses the manifest at path. A missing file is returned as
// an error wrapping fs.ErrNotExist.
func Load(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(path, data)
}

// Parse parses manifest content. path is only used in errors.
func Parse(path string, data []byte) (*Package, error) {
	doc, err := object(path, data)
	if err != nil {
		return nil, err
	}

	pkg := &Package{
		Path: path,
		Name: doc.Get("name").String(),
		Kind: doc.Get("project.kind").String(),
	}

	scripts := doc.Get("scripts")
	if !scripts.Exists() || scripts.Type == gjson.Null {
		return pkg, nil
	}
	if !scripts.IsObject() {
		return nil, &ParseError{Path: path, Reason: "scripts must be an object"}
	}

	seen := make(map[string]bool)
	scripts.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		switch {
		case value.Type != gjson.String:
			err = &ParseError{Path: path, Reason: fmt.Sprintf("script %q is not a string", name)}
		case seen[name]:
			err = &ParseError{Path: path, Reason: fmt.Sprintf("duplicate script %q", name)}
		default:
			seen[name] = true
			pkg.Scripts = append(pkg.Scripts, Script{Name: name, Command: value.String()})
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

// object checks that data is a well-formed JSON object.
func object(path string, data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &ParseError{Path: path, Reason: "invalid JSON"}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return gjson.Result{}, &ParseError{Path: path, Reason: "top-level value must be an object"}
	}
	return doc, nil
}
