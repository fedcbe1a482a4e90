package assets

import (
	_ "embed"
)

//go:embed logo.svg
var LogoBytes []byte

//go:embed WHATSNEW.md
var WhatsNew string
