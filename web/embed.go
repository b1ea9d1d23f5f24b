// Package web holds the assets served under /static.
package web

import "embed"

// Static contains the stylesheet and images.
//
//go:embed static
var Static embed.FS
