// Package sensors decodes raw sensor packages from workbook, YAML and JSON exports.
package sensors
