package actions

import (
	"fmt"
	"runtime"

	"github.com/shadeworks/shade/internal/app"
)

type versionDeps struct {
	Printf   func(format string, a ...any) (n int, err error)
	Version  func() string
	Platform func() string
}

func defaultVersionDeps() versionDeps {
	return versionDeps{
		Printf:  fmt.Printf,
		Version: func() string { return app.Version },
		Platform: func() string {
			return fmt.Sprintf("%s, %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
