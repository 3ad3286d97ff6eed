package textnorm

import (
	"fmt"
	"runtime"
	"strings"
)

// Policy is the set of bytes treated as a line break on the host.
type Policy int

const (
	// PolicyCRLF treats both CR and LF as line breaks (windows).
	PolicyCRLF Policy = iota
	// PolicyLF treats only LF as a line break (unix family).
	PolicyLF
	// PolicyLFFallback is used on every other platform and behaves like PolicyLF.
	PolicyLFFallback
)

// PolicyAuto is the configuration value that selects HostPolicy.
const PolicyAuto = "auto"

// String returns the configuration name of the policy
func (p Policy) String() string {
	switch p {
	case PolicyCRLF:
		return "crlf"
	case PolicyLF:
		return "lf"
	case PolicyLFFallback:
		return "lf-fallback"
	default:
		return "unknown"
	}
}

// IsNewline reports whether b is a line-break byte under the policy.
func (p Policy) IsNewline(b byte) bool {
	switch p {
	case PolicyCRLF:
		return b == '\n' || b == '\r'
	default:
		return b == '\n'
	}
}

// PolicyForOS maps a GOOS value to its line-ending policy.
func PolicyForOS(goos string) Policy {
	switch goos {
	case "windows":
		return PolicyCRLF
	case "linux", "android", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "illumos", "aix":
		return PolicyLF
	default:
		return PolicyLFFallback
	}
}

// HostPolicy returns the policy of the running platform.
func HostPolicy() Policy {
	return PolicyForOS(runtime.GOOS)
}

// ParsePolicy parses a configuration value; "auto" and "" resolve to HostPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", PolicyAuto:
		return HostPolicy(), nil
	case "crlf":
		return PolicyCRLF, nil
	case "lf":
		return PolicyLF, nil
	case "lf-fallback":
		return PolicyLFFallback, nil
	default:
		return 0, fmt.Errorf("unknown line ending policy %q (want auto, crlf, lf or lf-fallback)", s)
	}
}
