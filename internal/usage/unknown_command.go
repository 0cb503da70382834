package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned for a command path that does not exist.
// Suggestions, when given, are listed the way git lists similar commands.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("shade: '%s' is not a shade command. See 'shade --help'.", command)
	if len(suggestions) > 0 {
		if len(suggestions) == 1 {
			msg += "\n\nThe most similar command is"
		} else {
			msg += "\n\nThe most similar commands are"
		}
		msg += "\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{Kind: ErrUnknownCommand, Message: msg}
}
