package static

import _ "embed"

//go:embed index.html
var IndexHTML string
