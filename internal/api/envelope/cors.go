// Package envelope shapes every response the API emits. It owns the CORS
// header set, the preflight reply and the JSON success and error bodies, so
// that no endpoint can answer a browser without CORS headers.
package envelope

import (
	"context"
	"net/http"
	"strings"
)

const (
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"

	AllowedMethods = "GET,POST,PUT,DELETE,OPTIONS"
	AllowedHeaders = "Content-Type, Authorization"

	wildcard = "*"
)

// Policy decides which origins are echoed back with credentials. The zero
// value admits every origin.
type Policy struct {
	allowed map[string]struct{}
	any     bool
}

// NewPolicy builds a policy from an allow-list. An empty list, or one that
// contains "*", admits every origin that identifies itself.
func NewPolicy(allowedOrigins []string) Policy {
	p := Policy{allowed: map[string]struct{}{}}
	for _, o := range allowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case wildcard:
			p.any = true
		default:
			p.allowed[o] = struct{}{}
		}
	}
	if len(p.allowed) == 0 {
		p.any = true
	}
	return p
}

func (p Policy) admits(origin string) bool {
	if origin == "" || origin == "null" {
		return false
	}
	if p.any || p.allowed == nil {
		return true
	}
	_, ok := p.allowed[origin]
	return ok
}

// Headers computes the CORS header set for a request origin. An admitted
// origin is echoed with credentials enabled. Anything else gets the wildcard
// and no credentials header, since browsers reject "*" with credentials.
func (p Policy) Headers(origin string) http.Header {
	origin = strings.TrimSpace(origin)
	h := make(http.Header, 4)
	h.Set(HeaderAllowMethods, AllowedMethods)
	h.Set(HeaderAllowHeaders, AllowedHeaders)
	if p.admits(origin) {
		h.Set(HeaderAllowOrigin, origin)
		h.Set(HeaderAllowCredentials, "true")
		return h
	}
	h.Set(HeaderAllowOrigin, wildcard)
	return h
}

// Apply writes the CORS headers for r onto w. Every branch depends on the
// Origin header, so caches must key on it even when "*" is sent.
func (p Policy) Apply(w http.ResponseWriter, r *http.Request) {
	dst := w.Header()
	for k, v := range p.Headers(r.Header.Get("Origin")) {
		dst[k] = v
	}
	addVary(dst, "Origin")
}

// Preflight answers an OPTIONS request: 204, CORS headers, no body.
func (p Policy) Preflight(w http.ResponseWriter, r *http.Request) {
	p.Apply(w, r)
	w.WriteHeader(http.StatusNoContent)
}

func addVary(h http.Header, value string) {
	for _, v := range h.Values("Vary") {
		for _, part := range strings.Split(v, ",") {
			if strings.EqualFold(strings.TrimSpace(part), value) {
				return
			}
		}
	}
	h.Add("Vary", value)
}

type policyKey struct{}

// WithPolicy stores p in ctx for the package-level response helpers.
func WithPolicy(ctx context.Context, p Policy) context.Context {
	return context.WithValue(ctx, policyKey{}, p)
}

// PolicyFrom returns the policy installed by the CORS middleware, or the
// permissive zero policy.
func PolicyFrom(ctx context.Context) Policy {
	if p, ok := ctx.Value(policyKey{}).(Policy); ok {
		return p
	}
	return Policy{}
}

// CORSHeaders is Headers under the default policy.
func CORSHeaders(origin string) http.Header {
	return Policy{}.Headers(origin)
}

// Preflight answers r with the policy in its context.
func Preflight(w http.ResponseWriter, r *http.Request) {
	PolicyFrom(r.Context()).Preflight(w, r)
}
