package cli

import "fmt"

type notLoggedInError struct {
	role string
}

func (e notLoggedInError) Error() string {
	if e.role == "" {
		return "not logged in (run: sia login <role>)"
	}
	return fmt.Sprintf("not logged in as %s (run: sia login %s)", e.role, e.role)
}

func errNotLoggedIn(role string) error {
	return notLoggedInError{role: role}
}

type formInvalidError struct {
	errs map[string]string
}

func (e formInvalidError) Error() string {
	return fmt.Sprintf("form invalid: %d field(s) rejected", len(e.errs))
}
