// Package model holds the declarative descriptors the builder consumes: tabs,
// field groups, fields with their select options, sublists, sublist rows,
// list columns and buttons. Field attributes are wrapped in Optional so a
// declared-but-false value (isMandatory: false) is distinguishable from an
// absent key; the builder applies an attribute whenever it was declared.
// Rows keep their key order so cell writes follow the caller's layout.
package model
