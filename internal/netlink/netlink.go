// Package netlink decides whether the cognitive link is usable: physical
// connectivity AND no manual offline override. The decision is snapshotted
// once per request so a connectivity flip mid-request cannot split a single
// resolution across two different link states.
package netlink

import (
	"net"
	"time"
)

//go:generate mockgen -source=netlink.go -destination=../mocks/netlink/mock_checker.go -package=mock_netlink

// Checker reports whether the network is physically reachable.
type Checker interface {
	Reachable() bool
}

// DialChecker probes reachability with a single TCP dial.
type DialChecker struct {
	addr    string
	timeout time.Duration
}

// NewDialChecker creates a checker probing addr. Empty addr probes a public
// DNS resolver.
func NewDialChecker(addr string, timeout time.Duration) *DialChecker {
	if addr == "" {
		addr = "1.1.1.1:53"
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &DialChecker{addr: addr, timeout: timeout}
}

// Reachable reports whether the probe address accepts a connection.
func (c *DialChecker) Reachable() bool {
	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Active snapshots the effective link state for one request.
func Active(checker Checker, forceOffline bool) bool {
	if forceOffline {
		return false
	}
	return checker.Reachable()
}
