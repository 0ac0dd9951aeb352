// Package daymark embeds the built frontend and the migration set so the
// server ships as a single binary that can be started from any directory.
package daymark

import "embed"

//go:embed all:web/dist
var WebFS embed.FS

//go:embed migrations
var MigrationsFS embed.FS
