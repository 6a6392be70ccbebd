package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/luciano-vc/storeadmin/internal/core/nav"
)

// errAuthRequired is returned when the guard redirects a protected transition
// to the login route.
var errAuthRequired = errors.New("authentication required: run 'storeadmin login' first")

// transition resolves the named route through the guard before a command
// runs. Landing on the login route instead of the target aborts the command.
func transition(guard *nav.Guard, name string) error {
	route, ok := nav.Find(nav.Routes(), name)
	if !ok {
		return fmt.Errorf("unknown route: %s", name)
	}

	if resolved := guard.Resolve(route); resolved.Name != route.Name {
		return errAuthRequired
	}

	return nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", arg)
	}

	return id, nil
}
