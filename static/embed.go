package static

import (
	"embed"
	"io/fs"
)

//go:embed index.html style.css app.js
var embedded embed.FS

// FS exposes the embedded UI assets.
func FS() fs.FS {
	return embedded
}
