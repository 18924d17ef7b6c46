// Package chain runs a linear sequence of named image operations.
//
// Stages are built by a Registry from string type names and loosely typed
// parameters, so pipelines can be described as JSON:
//
//	[
//	  {"type": "gray", "params": {"mode": "standard"}},
//	  {"type": "gaussian", "params": {"size": 5, "border": "reflect"}},
//	  {"type": "sobel", "params": {"angles": "0,45,90,135"}}
//	]
//
// Common parameters of the neighborhood stages are "border" (zero,
// replicate, reflect, wrap; default reflect) and, for linear filters,
// "method" (direct, separable, fft). Nodes with "bypassed": true are kept
// in the chain but skipped by Process.
package chain
