// Package addrfilter checks outbound host names and IP addresses against a
// set of denied network ranges. It is meant for validating user-influenced
// URLs before a server-side fetch, where internal and link-local targets
// must be rejected.
package addrfilter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// Error definitions
var (
	// ErrEmptyHost is returned when the host to check is empty.
	ErrEmptyHost = errors.New("host must not be empty")

	// ErrNoAddresses is returned when a host name resolves to no addresses.
	ErrNoAddresses = errors.New("host resolved to no addresses")
)

// InvalidPrefixError reports a deny-range entry that is not a valid CIDR
// prefix.
type InvalidPrefixError struct {
	Prefix string
	Err    error
}

func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("invalid deny prefix %q: %v", e.Prefix, e.Err)
}

func (e *InvalidPrefixError) Unwrap() error {
	return e.Err
}

// defaultDenyPrefixes covers the ranges a server-side fetcher should never
// reach on behalf of a client: unspecified, loopback, RFC1918, carrier NAT,
// link-local (including the cloud metadata endpoint), benchmarking and the
// IPv6 unique-local and link-local ranges.
var defaultDenyPrefixes = []string{
	"0.0.0.0/8",
	"10.0.0.0/8",
	"100.64.0.0/10",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"198.18.0.0/15",
	"::1/128",
	"fc00::/7",
	"fe80::/10",
}

// Resolver resolves a host name to IP addresses. *net.Resolver satisfies
// this interface; tests inject a fake.
type Resolver interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// Options configures a Checker.
type Options struct {
	// DenyPrefixes replaces the default deny ranges when non-nil.
	DenyPrefixes []string

	// ExtraDenyPrefixes are added on top of the effective deny ranges.
	ExtraDenyPrefixes []string

	// Resolver resolves host names. Defaults to net.DefaultResolver.
	Resolver Resolver
}

// Checker validates hosts against denied network ranges. A Checker is
// immutable after construction and safe for concurrent use.
type Checker struct {
	denied   []netip.Prefix
	resolver Resolver
}

// NewChecker creates a Checker from the given options.
func NewChecker(opts Options) (*Checker, error) {
	raw := opts.DenyPrefixes
	if raw == nil {
		raw = defaultDenyPrefixes
	}
	raw = append(append([]string{}, raw...), opts.ExtraDenyPrefixes...)

	denied := make([]netip.Prefix, 0, len(raw))
	for _, p := range raw {
		prefix, err := netip.ParsePrefix(p)
		if err != nil {
			return nil, &InvalidPrefixError{Prefix: p, Err: err}
		}
		denied = append(denied, prefix)
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	return &Checker{denied: denied, resolver: resolver}, nil
}

// IsDenied reports whether a single address falls inside a denied range.
// IPv4-mapped IPv6 addresses are unmapped before matching so a mapped form
// cannot bypass an IPv4 range.
func (c *Checker) IsDenied(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range c.denied {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// IsInternalOrDenied reports whether host, an IP literal or a resolvable
// name, points at a denied range. A name is denied if ANY of its addresses
// is denied; a partially-internal answer is treated as hostile.
func (c *Checker) IsInternalOrDenied(ctx context.Context, host string) (bool, error) {
	if host == "" {
		return false, ErrEmptyHost
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		return c.IsDenied(addr), nil
	}

	addrs, err := c.resolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return false, fmt.Errorf("resolving %q: %w", host, err)
	}
	if len(addrs) == 0 {
		return false, fmt.Errorf("%w: %q", ErrNoAddresses, host)
	}

	for _, addr := range addrs {
		if c.IsDenied(addr) {
			return true, nil
		}
	}
	return false, nil
}
