package theme

import (
	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/themectx"
)

func Toggle(args []string, flags *dispatchers.ParsedFlags) error {
	return toggle(args, flags, DefaultDeps())
}

func toggle(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	s := mount(deps)
	defer s.close()

	state, err := themectx.Access(s.ctx)
	if err != nil {
		return err
	}

	from := state.Theme()
	state.ToggleTheme()
	to := state.Theme()

	_, _ = deps.Printf("theme %s -> %s\n", deps.Style.Muted(from.String()), deps.Style.Success(to.String()))
	return nil
}
