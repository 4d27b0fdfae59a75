package config

import (
	"fmt"

	gv "github.com/hashicorp/go-version"
)

// Version of the webwasp binary.
const Version = "0.1.0"

// CheckRequiredVersion fails when current does not satisfy constraint, for
// example ">= 0.1.0, < 1.0.0".
func CheckRequiredVersion(constraint, current string) error {
	cs, err := gv.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("required_version %q: %w", constraint, err)
	}
	cur, err := gv.NewVersion(current)
	if err != nil {
		return fmt.Errorf("version %q: %w", current, err)
	}
	if !cs.Check(cur) {
		return fmt.Errorf("webwasp %s does not satisfy required_version %q", cur.String(), constraint)
	}
	return nil
}
