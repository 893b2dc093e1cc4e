// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"strings"

	"github.com/vk/cfgdot/internal/config"
)

// isValidSegmentName checks for undesirable but technically valid names.
func isValidSegmentName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, " \t\r\n\"{}=")
}

// Parse creates a new Address from a dotted reference such as a thread's
// execution list entry (`G1.M2`). Sigils on individual segments are stripped.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	addr := &Address{}
	for _, segment := range strings.Split(rawID, ".") {
		if segment == "" {
			return nil, fmt.Errorf("identifier %q contains an empty segment", rawID)
		}
		name := config.StripSigil(segment)
		if !isValidSegmentName(name) {
			return nil, fmt.Errorf("invalid segment name: %q", segment)
		}
		addr.Path = append(addr.Path, name)
	}

	return addr, nil
}
