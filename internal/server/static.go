package server

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/storybite/storybite/internal/media"
)

// mediaFileServer serves showcase assets from a directory. Directories are
// never listed and only playable extensions are served.
type mediaFileServer struct {
	fileSystem fs.FS
}

func newMediaFileServer(fsys fs.FS) *mediaFileServer {
	return &mediaFileServer{fileSystem: fsys}
}

func (s *mediaFileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/media/")
	if !fs.ValidPath(name) || name == "." {
		http.NotFound(w, r)
		return
	}
	contentType, ok := media.ContentType(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	info, err := fs.Stat(s.fileSystem, name)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFileFS(w, r, s.fileSystem, name)
}
