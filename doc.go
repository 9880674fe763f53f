// Package pullstreams provides a lazy, composable wrapper around a single-consumer pull-based sequence.
//
// A Stream is constructed from a Source, which produces one element per call to Next. Streams can also be
// created from slices, channels, iter.Seq sequences, or nothing at all (see From, FromChannel, FromSeq, Empty).
//
// Elements may then be operated upon using grouping (Pack, Repack, Flat), per-element (Map, Filter, Peek) and
// positional (Skip, Take, TakeLast) stages. Every stage is itself a Source that drives the Stream it wraps one
// pull at a time, so composing stages is just nesting one Stream inside another. A stage and the Stream it
// wraps share the same cursor: pulling either one advances both.
//
// Finally, the elements are consumed by terminal operations, such as collecting them into slices or maps,
// reducing them, counting them, or simply iterating over them.
//
// Besides Next, the pull contract has two control operations: Return requests early completion and Throw
// injects an error into the source. Both are forwarded through the stages to whatever source supports them;
// a source that does not support Return is reported as completed, and a source that does not support Throw
// hands the error straight back to the caller.
//
// Streams are always lazy, meaning that nothing is pulled from a source until a downstream stage or terminal
// operation asks for the next element. Streams are not safe for concurrent use: a Stream has exactly one
// consumer at a time.
package pullstreams
