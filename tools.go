//go:build tools

package game2d

import (
	_ "golang.org/x/tools/cmd/stringer"
)
