// Package primitive provides the typed operation modules for the three
// supported value kinds: Strings, Hashes, and Sets. Every operation
// validates its inputs, runs inside exactly one pooled connection
// lease, and decodes store replies into Go types. Absent keys come
// back as typed absence (ok booleans, nil pointers), never as errors.
package primitive
