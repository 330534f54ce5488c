// Package builder drives a host form from declarative descriptors.
//
// Each operation walks its input collection once, in order, issuing the
// matching host call per item. Host failures never escape as return values:
// they are logged through the configured logging.Logger (title plus the
// error message) and recorded in the Report returned next to the handle.
// Under the default AbortOnError policy the first failure ends the
// collection; items already applied stay applied and later operations are
// unaffected. ContinueOnError applies every item it can.
//
// Fields are created by ApplyField, shared by AddFields and AddSublists:
//
//	1. AddField(props) on the container (form or sublist)
//	2. mandatory, break type, display type, layout type when declared
//	3. display size when both height and width are declared
//	4. rich text height/width, link text, max length, padding, alias
//	5. select options in order
//	6. the default value, last, so it can name an option from step 5
//
// A declared attribute is applied even when its value is the zero value:
// isMandatory: false clears the flag on the host.
package builder
