package api

import (
	"encoding/json"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"

	"github.com/Samit-B/school-management/internal/models"
)

// RouteFor makes the routing decision for a message.
// Messages mentioning a document keyword go to GET /ask, everything else to POST /chatbot.
func RouteFor(message string) models.Route {
	lower := strings.ToLower(message)
	for _, kw := range models.DocumentKeywords {
		if strings.Contains(lower, kw) {
			return models.Route{
				Method: fhttp.MethodGet,
				Path:   models.PathAsk,
				Query:  "query=" + EncodeURIComponent(message),
			}
		}
	}

	body, _ := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: message})

	return models.Route{
		Method: fhttp.MethodPost,
		Path:   models.PathChatbot,
		Body:   body,
	}
}

// EncodeURIComponent percent-encodes s the way browsers encode a query component:
// everything but A-Z a-z 0-9 and -_.!~*'() is escaped, spaces become %20.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isUnreservedComponentByte(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0f])
	}
	return sb.String()
}

func isUnreservedComponentByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
