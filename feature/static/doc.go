// Package static serves the web root directory over HTTP.
//
// It wraps Fiber's filesystem middleware over an http.Dir:
//
//   - GET and HEAD only.
//   - "/" and any directory serve index.html when present.
//   - A directory without index.html gets a generated listing.
//   - Unknown paths fall through to Fiber's 404.
//   - Paths are normalised before lookup, so ".." segments can never
//     escape the root.
//   - Nothing is cached; every request reads the file from disk.
//
// The handler is a catch-all and must be the last feature registered.
package static
