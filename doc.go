// Package prefrank ranks items from pairwise preference judgments.
//
// 🚀 What is prefrank?
//
//	A small library and CLI that turns "A beats B by v" judgments into a
//	stationary score per item:
//		• Preference matrix: every judgment feeds both directions (v and 1−v)
//		• Adaptive damping: grows with the number of judgments collected
//		• Power iteration: damped, row-stochastic, L2 convergence test
//		• Pairwise variance: Beta(wins+1, losses+1) uncertainty per pair
//
// ✨ Why choose prefrank?
//
//   - Deterministic: same judgments, same scores, same iteration count
//   - All-or-nothing batches: a bad judgment never half-applies
//   - Explicit errors: sentinel errors for every rejected input
//
// Packages:
//
//	matrix/         : row-major Dense, row-stochastic transform, damping, vector helpers
//	rank/           : Engine: preferences, damping, power iteration, variances
//	dataset/        : JSON/YAML round files and JSON reports
//	internal/config : koanf layering: defaults, YAML file, PREFRANK_* env
//	internal/logging: zerolog logger construction
//	cmd/prefrank    : the command line front end
//
// Quick example:
//
//	eng, _ := rank.New([]string{"deploy", "docs", "refactor"})
//	_ = eng.AddPreferences([]rank.Preference{
//		{Target: "deploy", Source: "docs", Value: 1},
//	})
//	scores, _ := eng.Rank()
//
//	go get github.com/katalvlaran/prefrank
package prefrank
