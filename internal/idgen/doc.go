// Package idgen wraps the UUID generator used by the examples so that it can
// be stubbed in tests. Identifier production is the caller's concern; the
// tagid package itself never imports this.
package idgen
