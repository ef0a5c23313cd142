// Package sokobansolver is an in-memory Sokoban solving engine built
// around one puzzle model and a family of interchangeable search
// strategies.
//
// 🚀 What is it?
//
//	A thread-safe, deterministic engine that brings together:
//		• Puzzle model: strict level parsing, immutable states, transitions
//		• Uninformed search: BFS (optimal), DFS (explicit stack)
//		• Informed search: Greedy best-first, A* (optimal), Beam
//		• Local search: Simulated Annealing with seeded restarts
//		• Partial observability: frontier exploration under a vision radius
//		• CSP view: Backtracking and Forward Checking over box-to-target
//		  assignments
//		• Conditional planning: AND-OR search over nondeterministic outcomes
//
// ✨ Why this engine?
//
//   - One Options type, one Result type, one dispatcher for all strategies
//   - Deterministic everywhere - fixed expansion order, seeded RNG streams
//   - Safety caps (context, nodes, depth, time) abort runs, never hang them
//   - Pure Go model packages - safe for concurrent solver runs
//
// Everything is organized under two subpackages:
//
//	sokoban/ — Level, State, Action, transition function & heuristic
//	solver/  — the strategy family, Options, Result & the Solve dispatcher
//
// Quick ASCII example:
//
//	#######
//	#@ $ .#
//	#######
//
//	the agent '@' must push the box '$' onto the target '.'.
//
// Dive into the examples/ directory for strategy comparisons and
// conditional-plan construction.
//
//	go get github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject
package sokobansolver
