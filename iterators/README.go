/*
Package iterators provide a lazy, pull based iterator.

# Summary

An iterator's goal is to decouple the origin of the data from the consumer who uses that data.
A Cursor wraps any source that can be pulled one element at a time,
and lets you chain transformation stages such as Map and Filter on top of it
without materialising anything.
Work only happens when a terminal operator (ForEach, Each, Some, Find, Includes, Reduce, CollectTo)
starts pulling, and it pulls only as many elements as it needs.

A Cursor represents a single traversal.
Once it reported that it has no more elements, it stays exhausted,
and every operator that drives it will see an empty sequence from then on.

# Sources

A Cursor can be made from:

  - a Sequenceable, which can manufacture a fresh PullHandle on demand
  - a PullHandle, which is used as is
  - an iter.Seq
  - a slice

A Cursor is a Sequenceable itself, and wrapping it again shares the same position.

# Concurrency

A Cursor is meant to be consumed by a single goroutine.
Pulling the same Cursor from multiple goroutines without synchronisation is not supported.

# Resources

https://en.wikipedia.org/wiki/Iterator_pattern
https://en.wikipedia.org/wiki/Pipeline_(software)
*/
package iterators
