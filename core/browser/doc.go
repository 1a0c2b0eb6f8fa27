// Package browser opens URLs in the user's default web browser.
//
// Opening a browser is a best-effort side effect: headless machines and
// containers usually have none. Launch runs the opener in its own goroutine
// and discards its error, so serving never depends on it.
package browser
