// Package metrics summarizes headless runs: how fast and how cleanly the
// hinge opens, and when the confetti comes to rest.
package metrics
