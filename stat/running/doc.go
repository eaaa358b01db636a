// Package running implements routines for computing statistics on a stream
// of values.
package running // import "github.com/equinor/aps-gaussfield/stat/running"
