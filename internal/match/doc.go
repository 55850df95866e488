// Package match finds near misses between identifiers, used to explain why
// a field found no accessor pair.
package match
