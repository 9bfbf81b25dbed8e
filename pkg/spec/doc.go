// Package spec holds the declarative chart request model (VizSpec) together
// with its parser and validator.
//
// A VizSpec is built once from raw input (a JSON document, a generic mapping,
// a YAML document or an existing value), checked field by field, normalized
// (defaults resolved, options meaningless for the chart type cleared) and
// finally checked against the cross-field rules. Any failure is reported
// before a table is ever touched: structural problems as *ParseError and
// semantic ones as *ValidationError listing every violated rule.
package spec
