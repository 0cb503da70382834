// Package themectx publishes a light/dark theme state to a subtree of a UI.
//
// A provider is mounted on a context.Context with Provide. Every consumer
// built from the returned context (or any context derived from it) reaches the
// same *State through Access. Contexts that never passed through Provide have no
// theme, and Access reports ErrMissingProvider instead of inventing a default.
//
//	ctx, unmount := themectx.Provide(ctx, themesource.NewMemory(themectx.Light))
//	defer unmount()
//
//	state := themectx.MustAccess(ctx)
//	state.ToggleTheme()
//	fmt.Println(state.Theme()) // dark
package themectx
