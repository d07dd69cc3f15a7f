package engine

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/openrdap/rdap"

	"github.com/traceprint/traceprint/internal/core"
)

const defaultRDAPTimeout = 10 * time.Second

// WebsiteChecker looks up whether the target's website domain is registered.
type WebsiteChecker struct {
	Client  *rdap.Client
	Timeout time.Duration
}

// Check queries RDAP for the registrable domain behind a website value.
// Any lookup failure degrades to status "unknown"; the check never fails
// the surrounding search.
func (w *WebsiteChecker) Check(ctx context.Context, website string) *core.WebsiteCheck {
	domain := registrableDomain(website)
	if domain == "" {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := w.client()

	req := rdap.NewDomainRequest(domain)
	req.Timeout = w.timeout()
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		if isRDAPNotFound(err) {
			return &core.WebsiteCheck{Domain: domain, Registered: false, Status: "unregistered"}
		}
		return &core.WebsiteCheck{Domain: domain, Status: "unknown"}
	}

	if parsed, ok := resp.Object.(*rdap.Domain); ok {
		return &core.WebsiteCheck{
			Domain:     domain,
			Registered: true,
			Registrar:  registrarName(parsed),
			Status:     "registered",
		}
	}

	return &core.WebsiteCheck{Domain: domain, Status: "unknown"}
}

func (w *WebsiteChecker) client() *rdap.Client {
	if w != nil && w.Client != nil {
		return w.Client
	}
	return &rdap.Client{}
}

func (w *WebsiteChecker) timeout() time.Duration {
	if w != nil && w.Timeout > 0 {
		return w.Timeout
	}
	return defaultRDAPTimeout
}

// registrableDomain reduces a website value ("www.example.com",
// "https://example.com/about") to the bare domain for RDAP lookup.
func registrableDomain(website string) string {
	value := strings.TrimSpace(strings.ToLower(website))
	if value == "" {
		return ""
	}

	if strings.Contains(value, "://") {
		if parsed, err := url.Parse(value); err == nil && parsed.Hostname() != "" {
			value = parsed.Hostname()
		}
	}
	value = strings.TrimPrefix(value, "www.")
	if i := strings.IndexAny(value, "/?#"); i >= 0 {
		value = value[:i]
	}

	if !strings.Contains(value, ".") {
		return ""
	}
	return value
}

func registrarName(domain *rdap.Domain) string {
	if domain == nil {
		return ""
	}
	for _, entity := range domain.Entities {
		for _, role := range entity.Roles {
			if role == "registrar" && entity.VCard != nil {
				return entity.VCard.Name()
			}
		}
	}
	return ""
}

func isRDAPNotFound(err error) bool {
	clientErr, ok := err.(*rdap.ClientError)
	if !ok {
		return false
	}
	return clientErr.Type == rdap.ObjectDoesNotExist
}
