// Package validator provides the validator capability used by form elements
// and a Registry that maps validator kinds to factories. Kinds are looked up
// case-insensitively, so "StringLength" and "stringlength" build the same
// validator. NewRegistry registers the built-in kinds:
//
//	required      value must not be empty
//	stringlength  min / max rune count
//	regex         pattern the value must match
//	inarray       haystack of allowed values, optional ignorecase
//	between       inclusive numeric min / max
//	callback      Go function deciding validity
//	safehtml      value must survive an HTML sanitizer policy unchanged
//	schema        OpenAPI schema the value must satisfy
//
// Validators report failures as messages, never as errors: errors are
// reserved for unknown kinds and malformed options.
package validator
