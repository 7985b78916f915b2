// Package testutil provides shared helpers for docset tests.
package testutil
