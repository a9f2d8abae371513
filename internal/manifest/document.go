package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var prettyOptions = &pretty.Options{Width: 80, Indent: "  "}

// LoadTemplate reads the template manifest and checks that it is a JSON
// object. A missing file yields ErrTemplateMissing.
func LoadTemplate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, path)
		}
		return nil, fmt.Errorf("reading template: %w", err)
	}
	if _, err := object(path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Render returns the template with its scripts field replaced by the raw
// JSON object scripts. Other fields keep their order.
func Render(template, scripts []byte) ([]byte, error) {
	out, err := sjson.SetRawBytes(template, "scripts", scripts)
	if err != nil {
		return nil, fmt.Errorf("replacing scripts: %w", err)
	}
	return Format(out), nil
}

// Format pretty-prints a document with two-space indentation.
func Format(doc []byte) []byte {
	return pretty.PrettyOptions(doc, prettyOptions)
}

// Dependency returns the version range of name from dependencies or
// devDependencies.
func Dependency(doc []byte, name string) (string, bool) {
	for _, field := range []string{DependenciesField, DevDependenciesField} {
		if v := gjson.GetBytes(doc, field+"."+escapeKey(name)); v.Exists() {
			return v.String(), true
		}
	}
	return "", false
}

// SetDependency sets field.name to version and returns the formatted
// document.
func SetDependency(doc []byte, field, name, version string) ([]byte, error) {
	out, err := sjson.SetBytes(doc, field+"."+escapeKey(name), version)
	if err != nil {
		return nil, fmt.Errorf("setting %s %s: %w", field, name, err)
	}
	return Format(out), nil
}

// WriteFile replaces path with data by writing a sibling temp file and
// renaming it into place.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec // write error takes precedence
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil { //nolint:gosec // manifest is world-readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// escapeKey escapes path syntax in a package name such as "@types/node" so it
// is addressed as a single key.
func escapeKey(key string) string {
	out := make([]byte, 0, len(key)+4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !isPlainKeyChar(c) {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}

func isPlainKeyChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-' || c == ':' || c > '~'
}
