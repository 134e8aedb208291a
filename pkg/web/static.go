package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"

	"github.com/JaimeStill/mirofish/pkg/routes"
)

// DistServer returns a handler serving files from subdir of fsys, with
// urlPrefix stripped from request paths.
func DistServer(fsys fs.FS, subdir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFileRoutes returns a GET route at the root for each named file in
// subdir, for assets such as favicons and manifests that browsers request at
// well-known paths.
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []routes.Route {
	out := make([]routes.Route, 0, len(files))
	for _, name := range files {
		out = append(out, routes.Route{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: serveFile(fsys, path.Join(subdir, name)),
		})
	}
	return out
}

func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
