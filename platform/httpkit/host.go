package httpkit

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextSubdomainKey is the gin context key for the resolved site subdomain.
const ContextSubdomainKey = "subdomain"

// SubdomainFromHost extracts the leading label of a site host.
//
// With a base domain configured only hosts directly under it resolve, so
// "palmharborplaza.example.com" yields "palmharborplaza" for base
// "example.com". Without one, "name.localhost[:port]" and any host with at
// least three labels resolve to their first label. "www" never resolves.
func SubdomainFromHost(host, baseDomain string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")
	if host == "" || net.ParseIP(host) != nil {
		return ""
	}

	var sub string
	baseDomain = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(baseDomain)), ".")
	switch {
	case baseDomain != "":
		prefix, ok := strings.CutSuffix(host, "."+baseDomain)
		if !ok || strings.Contains(prefix, ".") {
			return ""
		}
		sub = prefix
	case strings.HasSuffix(host, ".localhost"):
		sub = strings.TrimSuffix(host, ".localhost")
		if strings.Contains(sub, ".") {
			return ""
		}
	default:
		parts := strings.Split(host, ".")
		if len(parts) < 3 {
			return ""
		}
		sub = parts[0]
	}

	if sub == "www" {
		return ""
	}
	return sub
}

// ResolveSubdomain stores the request's site subdomain on the gin context.
// X-Forwarded-Host wins over Host when present.
func ResolveSubdomain(baseDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Host
		if forwarded := c.GetHeader("X-Forwarded-Host"); forwarded != "" {
			host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
		if sub := SubdomainFromHost(host, baseDomain); sub != "" {
			c.Set(ContextSubdomainKey, sub)
		}
		c.Next()
	}
}

// Subdomain returns the subdomain resolved by ResolveSubdomain, if any.
func Subdomain(c *gin.Context) string {
	return c.GetString(ContextSubdomainKey)
}
