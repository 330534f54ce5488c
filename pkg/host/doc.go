// Package host declares the contracts a hosting runtime must satisfy for the
// builder to drive it: a Form that accepts tabs, field groups, fields,
// sublists and buttons, the Field and Sublist handles it returns, and the List
// page used for column layouts. The enumerations mirror the host's field,
// sublist, break, display and layout types so descriptors can be decoded
// straight from JSON or YAML. Implementations live outside this package; see
// host/memory for the in-process one.
package host
