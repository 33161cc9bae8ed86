// Package stations reads and writes the plain-text station file that
// describes a transit network.
//
// Format
//
// Each station is introduced by a line holding its name; the name must start
// with a letter. The lines that follow, up to the next station, list its
// neighbors as "<minutes> <neighbor>":
//
//	Central
//	5 Market
//	100 Harbour
//	Market
//	5 Central
//	3 Harbour
//	Harbour
//	3 Market
//	100 Central
//
// Blank lines, lines starting with whitespace and "#" comments are ignored.
// A connection may be listed under one or both of its stations; the later
// listing wins if the weights disagree.
//
// Loading
//
// Parse reads all lines first, registers every station, then resolves the
// neighbor lines, so a neighbor may be named before its own block appears.
// All problems in a file are reported together, each with its line number,
// and the error matches ErrMalformed; no graph is returned in that case.
//
// Logging
//
// The loader reports summaries and weight conflicts through a
// *logrus.Entry supplied with WithLogger; by default output is discarded.
package stations
