// Package utils provides internal utility functions for the htc-convert
// pipeline. This package is not intended to be imported by external code.
//
// It contains:
//   - ISO 8601 timestamp formatting and parsing
package utils
