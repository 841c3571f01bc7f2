package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kubev2v/fitness-tracker/internal/workout"
)

// parsePackageArg parses a CODE:v1,v2,... argument into a package.
func parsePackageArg(arg string) (workout.Package, error) {
	code, values, found := strings.Cut(arg, ":")
	code = strings.TrimSpace(code)
	if !found || code == "" {
		return workout.Package{}, fmt.Errorf("invalid package %q: expected CODE:v1,v2,...", arg)
	}

	fields := []any{}
	if strings.TrimSpace(values) == "" {
		return workout.Package{Code: code, Fields: fields}, nil
	}

	for i, raw := range strings.Split(values, ",") {
		value, err := parseValue(strings.TrimSpace(raw))
		if err != nil {
			return workout.Package{}, fmt.Errorf("invalid package %q: field %d: %w", arg, i, err)
		}
		fields = append(fields, value)
	}

	return workout.Package{Code: code, Fields: fields}, nil
}

func parseValue(s string) (any, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

func parsePackageArgs(args []string) ([]workout.Package, error) {
	pkgs := make([]workout.Package, 0, len(args))
	for _, arg := range args {
		pkg, err := parsePackageArg(arg)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}
