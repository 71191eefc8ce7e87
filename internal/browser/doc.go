// Package browser binds the theme manager to a real page when compiled with
// GOOS=js GOARCH=wasm: window.localStorage, window.matchMedia and DOM elements.
package browser
