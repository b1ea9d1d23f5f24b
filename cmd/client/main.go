//go:build js && wasm

// Command client is the WebAssembly program the landing page loads.
package main

import "g1.vc/site/internal/browser"

func main() {
	app := browser.Start()
	<-app.Done()
}
