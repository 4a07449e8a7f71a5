// Package staticfiles serves client assets from a directory (spec §1,
// out-of-scope external collaborator: "Static-file HTTP handler for
// client assets"). Grounded on the teacher's api/server.go, which mounts
// http.FileServer(http.Dir(...)) as a catch-all route; this keeps the
// same approach but parameterizes the root directory (the teacher
// hardcodes "./static/") since spec §6 takes it from "--www-root".
package staticfiles
