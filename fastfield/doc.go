// Package fastfield provides random access to per-document scalar values.
//
// The only value this library stores column-wise today is the fieldnorm: an
// 8-bit encoding of a document's length, looked up by document id at scoring
// time to normalize term weights against length bias.
package fastfield
