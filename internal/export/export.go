// Package export renders the site to a directory of static files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"g1.vc/site/internal/config"
	"g1.vc/site/internal/handlers"
	"g1.vc/site/internal/shell"
	"g1.vc/site/internal/theme"
	"g1.vc/site/internal/views"
	"g1.vc/site/web"
)

// Result summarizes an export.
type Result struct {
	Files      int
	WithClient bool
}

// Run writes index.html, the embedded static assets and, when built, the
// WebAssembly client into dir.
func Run(cfg *config.Config, dir string, log zerolog.Logger) (Result, error) {
	var res Result
	if dir == "" {
		return res, errors.New("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}

	res.WithClient = handlers.ClientAvailable(cfg.Server.ClientDir)

	var buf bytes.Buffer
	page := views.Page(views.PageData{
		Site:       cfg.Site,
		Styles:     theme.Default(),
		State:      shell.State{},
		Feeds:      cfg.FeedProvider(),
		FeedDelay:  cfg.Server.FeedDelay,
		WithClient: res.WithClient,
	})
	if err := page.Render(&buf); err != nil {
		return res, fmt.Errorf("render page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return res, fmt.Errorf("write index.html: %w", err)
	}
	res.Files++
	log.Debug().Str("file", "index.html").Int("bytes", buf.Len()).Msg("exported")

	n, err := copyTree(web.Static, "static", dir)
	if err != nil {
		return res, fmt.Errorf("copy static assets: %w", err)
	}
	res.Files += n

	if res.WithClient {
		n, err := copyTree(os.DirFS(cfg.Server.ClientDir), ".", filepath.Join(dir, "client"))
		if err != nil {
			return res, fmt.Errorf("copy client: %w", err)
		}
		res.Files += n
	}

	log.Info().Str("dir", dir).Int("files", res.Files).Bool("client", res.WithClient).Msg("export complete")
	return res, nil
}

// copyTree copies root of fsys into dst, keeping root's own name when it is
// not ".".
func copyTree(fsys fs.FS, root, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}
