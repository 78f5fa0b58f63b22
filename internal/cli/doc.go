// Package cli implements the fluxblock command line: inspecting block packs,
// the category tree they produce and the known parameter kinds.
package cli
