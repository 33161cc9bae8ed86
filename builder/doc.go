// Package builder generates synthetic transit networks for tests, benchmarks
// and the `transit generate` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:  new graph + options + constructors, applied in order.
//     – Apply:       the same against an existing graph.
//   - Topology constructors (Constructor closures):
//     – Line(n), Loop(n), Hub(n), Grid(rows, cols), Complete(n), RandomSparse(n, p).
//   - Station naming (IDFn implementations):
//     – DefaultIDFn:      "S0","S1",…
//     – SymbolIDFn:       "A".."Z".
//     – ExcelColumnIDFn:  "A","Z","AA",…
//     – PrefixIDFn:       "<prefix>0","<prefix>1",…
//     – StationNameFn:    seeded street-style names via gofakeit.
//   - Travel-time distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform integer in [min,max].
//
// Guarantees:
//
//   - Constructors reuse stations that already exist, so composing Line and
//     Hub over the same ID scheme yields a shared interchange at index 0.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
//   - Same options, seed and constructor order ⇒ identical networks.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(2, 9)},
//	    builder.Loop(8),
//	    builder.RandomSparse(8, 0.2),
//	)
package builder
