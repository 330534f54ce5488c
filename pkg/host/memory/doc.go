// Package memory implements the host contracts in process. Forms and lists
// built here enforce the same construction rules a hosting runtime does
// (unique ids per scope, known containers and enumerations, options before
// option-bound defaults, sublist cells only on known fields) and journal every
// call, which makes them suitable as test doubles, for previews and for the
// CLI. WithFault injects failures into any call.
package memory
