// Package themed binds themectx to bubbletea.
//
// A Provider mounts a theme provider and builds its child models from the
// scoped context. Children that read the theme (Label, ToggleButton) take a
// subscription and are woken through ChangedMsg when the theme changes.
// The provider hands each ChangedMsg only to the child that owns the
// subscription, so children that never read the theme (Static) are not
// updated by a toggle at all.
package themed
