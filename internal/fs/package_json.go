package fs

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/vercel/pmdetect/internal/fspath"
)

// PackageJSON is the subset of a NodeJS package.json that detection reads.
// A field with an unexpected JSON type is left empty rather than failing the
// whole parse.
type PackageJSON struct {
	PackageManager string
}

// Parse parses package.json payload and returns structure. The payload must
// be a JSON object.
func Parse(payload []byte) (*PackageJSON, error) {
	var rawJSON map[string]interface{}
	if err := json.Unmarshal(payload, &rawJSON); err != nil {
		return nil, errors.Wrap(err, "invalid package.json")
	}
	if rawJSON == nil {
		return nil, errors.New("invalid package.json: expected an object")
	}
	return &PackageJSON{
		PackageManager: stringField(rawJSON, "packageManager"),
	}, nil
}

// ReadPackageJSON returns a struct of package.json
func ReadPackageJSON(path fspath.AbsoluteSystemPath) (*PackageJSON, error) {
	b, err := path.ReadFile()
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func stringField(rawJSON map[string]interface{}, key string) string {
	if value, ok := rawJSON[key].(string); ok {
		return value
	}
	return ""
}
