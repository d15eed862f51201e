// Package cache implements a fixed-capacity, in-memory key–value cache with
// least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (map + doubly-linked list)
//   - Provide O(1) Put/Get via map index + handle-linked recency list
//   - Store list nodes in an arena addressed by integer handles, not pointers
//   - Treat a read as a use: Get promotes, Keys/Values/Peek do not
//   - Panic on a broken internal invariant instead of limping on
package cache
