package controllers

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
)

const indexFile = "index.html"

// SPAController serves the built single page application. Paths that do not
// match a file fall back to index.html so client-side routes survive a reload.
type SPAController struct {
	root string
}

// NewSPAController creates a controller serving files below root
func NewSPAController(root string) *SPAController {
	return &SPAController{
		root: root,
	}
}

// Serve handles GET /* for every path no other route matched
func (c *SPAController) Serve(w http.ResponseWriter, r *http.Request) {
	// path.Clean on a rooted path strips any ../ segments
	name := filepath.Join(c.root, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err != nil || info.IsDir() {
		name = filepath.Join(c.root, indexFile)
	}

	if err := c.serveFile(w, r, name); err != nil {
		log.WithError(err).WithField("path", r.URL.Path).Error("Failed to serve static file")
		http.NotFound(w, r)
	}
}

func (c *SPAController) serveFile(w http.ResponseWriter, r *http.Request, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	if mime.TypeByExtension(filepath.Ext(name)) == "" {
		if mtype, err := mimetype.DetectReader(f); err == nil {
			w.Header().Set("Content-Type", mtype.String())
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return err
		}
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return nil
}
