package domain

import "fmt"

// PlayerErrorDomainRestricted is raised by the provider player when the page origin is not whitelisted
const PlayerErrorDomainRestricted = 6007

// DomainWhitelistURL is the provider dashboard page where allowed domains are configured
const DomainWhitelistURL = "https://www.vdocipher.com/dashboard/config/domain"

// PlayerError is an error reported by the embedded player
type PlayerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e PlayerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("player error %d", e.Code)
	}
	return fmt.Sprintf("player error %d: %s", e.Code, e.Message)
}

// Remediation returns a human readable message for the error.
// host is the origin the operator should whitelist, e.g. localhost:3000.
func (e PlayerError) Remediation(host string) string {
	switch e.Code {
	case PlayerErrorDomainRestricted:
		if host == "" {
			host = "this site's domain"
		}
		return fmt.Sprintf("Domain restriction error: Please add %s to your VdoCipher dashboard domain whitelist at %s", host, DomainWhitelistURL)
	default:
		if e.Message != "" {
			return e.Message
		}
		return "Failed to load video"
	}
}
