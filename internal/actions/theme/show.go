package theme

import (
	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/themectx"
)

func Show(args []string, flags *dispatchers.ParsedFlags) error {
	return show(args, flags, DefaultDeps())
}

func show(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	s := mount(deps)
	defer s.close()

	state, err := themectx.Access(s.ctx)
	if err != nil {
		return err
	}

	_, _ = deps.Printf("%s %s\n", deps.Style.Success(state.Theme().String()), deps.Style.Muted("(preference: "+s.source.Preference()+")"))
	return nil
}
