package themectx

// Source is the external collaborator that computes the theme. The provider
// treats it as opaque: it never derives a mode on its own, it only asks the
// source for the current one after mounting, toggling, or being notified.
type Source interface {
	Theme() Mode
	ToggleTheme()
}

// Notifier is implemented by sources whose value can change without a call to
// ToggleTheme (a stored preference edited elsewhere, a system setting, ...).
// The returned func cancels the subscription.
type Notifier interface {
	Subscribe(fn func(Mode)) (cancel func())
}

// Logger is the subset of a leveled logger used by the provider.
type Logger interface {
	Debug(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(_ string, _ ...any) {}
