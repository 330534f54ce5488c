// Package document loads and saves whole form descriptions. A Document
// bundles the title, tabs, field groups, fields, sublists, sublist rows,
// list columns and buttons of one page, and can be decoded from JSON or YAML.
// YAML input is normalised through JSON so an explicit `value: null` still
// counts as a declared default and row keys keep their order.
package document
