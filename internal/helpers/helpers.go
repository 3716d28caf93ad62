package helpers

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP - определяет адрес клиента. За nginx реальный адрес
// приходит в X-Real-IP, иначе берём RemoteAddr без порта.
func ClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
