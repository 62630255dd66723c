package representation

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidDrinkURI = errors.New("invalid drink uri")

// URIs builds absolute resource locations for the host a request was addressed to.
type URIs struct {
	base string
}

func NewURIs(base string) URIs {
	return URIs{base: strings.TrimRight(base, "/")}
}

// FromRequest honours X-Forwarded-Proto and X-Forwarded-Host set by a proxy in front of
// the service.
func FromRequest(r *http.Request) URIs {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	return NewURIs(scheme + "://" + host)
}

func (u URIs) Root() string {
	return u.base + "/"
}

func (u URIs) Docs() string {
	return u.base + "/docs/{rel}"
}

func (u URIs) Drinks() string {
	return u.base + "/drinks"
}

func (u URIs) Drink(id uuid.UUID) string {
	return u.base + "/drinks/" + id.String()
}

func (u URIs) DrinksByName() string {
	return u.base + "/drinks/by-name{?q}"
}

func (u URIs) Orders() string {
	return u.base + "/orders"
}

func (u URIs) Order(id uuid.UUID) string {
	return u.base + "/orders/" + id.String()
}

func (u URIs) Payment(id uuid.UUID) string {
	return u.Order(id) + "/payment"
}

func (u URIs) Receipt(id uuid.UUID) string {
	return u.Order(id) + "/receipt"
}

// ParseDrinkURI extracts the drink id from a drink URI. Only the path is inspected, so URIs
// minted for another host name of this service are accepted.
func ParseDrinkURI(raw string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidDrinkURI, raw)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) != 2 || segments[0] != "drinks" {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidDrinkURI, raw)
	}

	id, err := uuid.Parse(segments[1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidDrinkURI, raw)
	}
	return id, nil
}
