// Package chain provides sequential, short-circuiting composition of
// either.Either values.
//
// Two shapes are offered:
// - Chain: a fluent wrapper (Start/FromValue, Then, Map, Ensure, Finally)
// - Do2/Do3/Do4: comprehension blocks where each step sees the Right payloads
//   bound by the steps before it
//
// Both are plain nested either.FlatMap calls. Steps run strictly in order and
// the first Left ends the block: no later step is invoked and that Left is
// the result.
package chain
