// Package version holds the current release version string.
package version

// Current is the current released version of clrgen.
const Current = "0.1.0"
