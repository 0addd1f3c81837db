package tracking

import (
	"golang.org/x/net/publicsuffix"
	"net"
	"net/http"
	"strings"
	line_tracking "tracking-line/pkg/line-tracking"
)

// exchangeCookies reads cookies from the incoming request and writes them to its response.
type exchangeCookies struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *exchangeCookies) GetCookieValues(name string) []string {
	values := make([]string, 0)
	for _, cookie := range c.r.Cookies() {
		if cookie.Name == name {
			values = append(values, cookie.Value)
		}
	}
	return values
}

func (c *exchangeCookies) SetCookie(name, value string, options *line_tracking.CookieOptions) {
	domain := options.Domain
	if domain == line_tracking.CookieDomainAuto {
		domain = autoCookieDomain(c.r.Host)
	}

	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Domain:   domain,
		Path:     options.Path,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// autoCookieDomain returns the registrable domain of host, or "" for a host-only cookie when
// host is an IP address or has no public suffix.
func autoCookieDomain(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" || net.ParseIP(host) != nil || !strings.Contains(host, ".") {
		return ""
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return domain
}
