package staticfiles

import "net/http"

// Handler serves files under root, the directory named by --www-root.
func Handler(root string) http.Handler {
	return http.FileServer(http.Dir(root))
}
