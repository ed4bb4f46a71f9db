// Package tweener is the worker stage of a video frame-interpolation
// pipeline. It consumes pairs of adjacent frames from a shared job queue,
// decides per pair whether to synthesize an in-between frame or reuse an
// existing one, and writes results into a shared, index-addressed output
// buffer drained by an encoder downstream.
//
// The scene-change gate is a cheap mean-absolute-difference heuristic: pairs
// whose dissimilarity meets the job's threshold are treated as hard cuts and
// the first frame is reused instead of synthesizing a transition that never
// happened.
//
// tweener supports multiple queue backends:
// - In-memory (single process)
// - Redis
// - RabbitMQ
// - Bring Your Own
//
// Interpolation engines are pluggable through the algorithms package; the
// built-in "blend" engine is a CPU pixel average. Accelerator-backed engines
// (RIFE and friends) register a constructor and get one cached instance per
// (worker, algorithm) pair.
//
// # Example
//
//	package main
//
//	import (
//		"context"
//
//		"github.com/BranchIntl/tweener"
//		"github.com/BranchIntl/tweener/config"
//	)
//
//	func main() {
//		cfg := config.Defaults()
//		cfg.Pairs = 120
//		cfg.Concurrency = 4
//
//		engine, buffer, err := tweener.NewEngine(cfg, tweener.DefaultTable())
//		if err != nil {
//			panic(err)
//		}
//
//		// enqueue jobs, run until signalled, then drain buffer
//		_ = engine.Run(context.Background())
//		_ = buffer
//	}
package tweener
