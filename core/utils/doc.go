// Package utils provides common conversion helpers for serve-web.
// Values read from the environment arrive as strings and are converted
// leniently here, with an explicit fallback when parsing fails.
package utils
