// Package expense provides the types and storage for a personal expense
// record-keeper. It is designed to be local-first: the whole collection of
// expenses lives in a single human-readable JSON file.
//
// The core functionalities include:
//   - Expense Records: an id, the day it was recorded, a description and a
//     non-negative amount kept as an exact decimal.
//   - Collection: the ordered list of expenses with the operations to add,
//     remove, update and sum them. Ids are derived as the highest existing
//     id plus one, so the id of a removed last expense is reused.
//   - Storage: a Store loads and saves the full collection. FileStore reads
//     and rewrites a JSON file, and applies a CorruptPolicy when the file
//     cannot be understood. MemoryStore keeps the collection in memory.
//
// This package serves as the foundational logic for the `extracker`
// command-line tool.
package expense
