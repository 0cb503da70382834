package dispatchers

type CommandFunc func(args []string, flags *ParsedFlags) error

// Resolution is the outcome of Dispatch: the node that matched, its positional
// arguments and the function to run.
type Resolution struct {
	Node    *DispatchNode
	Args    []string
	Flags   *ParsedFlags
	Execute CommandFunc

	// ExitCode is returned by main after Execute succeeds. Non-zero only when
	// help is shown in place of a missing command.
	ExitCode int
}

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}
