package sensors

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kubev2v/fitness-tracker/internal/workout"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// LoadFile reads packages from path, picking the parser by file extension.
func LoadFile(path, sheet string) ([]workout.Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	zap.S().Named("sensors").Debugf("Loading %s (%d bytes, %s)", path, len(content), ext)

	var pkgs []workout.Package
	switch ext {
	case ".xlsx":
		if !IsExcelFile(content) {
			return nil, errors.Errorf("%s is not a valid xlsx workbook", path)
		}
		pkgs, err = ParseWorkbook(content, sheet)
	case ".yaml", ".yml", ".json":
		pkgs, err = ParseYAML(content)
	default:
		return nil, errors.Errorf("unsupported file extension %q for %s", ext, path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return pkgs, nil
}
