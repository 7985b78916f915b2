// Package model defines core types used throughout Lexgo.
//
// # Identity Types
//
//   - DocID: Dense, segment-local document identifier (uint32)
//
// # Data Types
//
//   - Score: Relevance score (float32)
//   - Candidate: Search result with a global document id and a score
package model
