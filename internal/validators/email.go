package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// IsEmailDomainValid checks that the address's domain actually receives
// mail: an MX record, or failing that any A/AAAA record. Lookups are
// deadline-bound so a slow resolver cannot stall registration.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain)
	return err == nil && len(ips) > 0
}
