// Package browser binds the page behaviors to the DOM through syscall/js.
// It only has content when built with GOOS=js GOARCH=wasm.
package browser
