// Package idgen produces the GUIDs assigned to blocks, ports and connectors.
// Callers must treat identifiers as opaque strings.
package idgen
