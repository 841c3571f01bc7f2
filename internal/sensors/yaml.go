package sensors

import (
	"github.com/kubev2v/fitness-tracker/internal/workout"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

type packageFile struct {
	Packages []workout.Package `json:"packages"`
}

// ParseYAML reads a `packages` list from a YAML or JSON document.
// Numbers decode as float64; integral values still bind to count fields.
func ParseYAML(content []byte) ([]workout.Package, error) {
	var doc packageFile
	if err := yaml.UnmarshalStrict(content, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding packages document")
	}

	for i, pkg := range doc.Packages {
		if pkg.Code == "" {
			return nil, errors.Errorf("package %d: missing code", i)
		}
		if pkg.Fields == nil {
			doc.Packages[i].Fields = []any{}
		}
	}

	return doc.Packages, nil
}
