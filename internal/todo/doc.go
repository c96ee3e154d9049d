// Package todo holds the in-memory task list and the pure operations that
// transform it.
//
// Every operation is copy-on-write: it returns a new value and never
// modifies the list it was called on, so a List or Session can be shared
// freely between the view and tests.
//
// # Task identity
//
// Task IDs are random (version 4) UUIDs. They carry no ordering and are
// never reused within a process.
//
// # Invalid input
//
// There are no error returns. Empty text, whitespace-only text and unknown
// IDs all degrade to no-ops:
//
//   - Add with blank text returns the list unchanged
//   - Delete and Toggle with an unknown ID return the list unchanged
//   - SaveEdit with a blank draft keeps the old text but still leaves edit mode
//
// # Views
//
// FilterAndSearch returns an iter.Seq that walks the list on every range
// loop. It holds no state of its own and can be ranged over any number of
// times.
package todo
