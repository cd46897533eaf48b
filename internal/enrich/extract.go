// Package enrich looks up a business owner through web search snippets.
package enrich

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"

	"github.com/octobees/lead-finder/internal/entity"
)

var (
	ownerPattern = regexp.MustCompile(`(?:Owner|CEO|President|Founder)[:\s]+([A-Z][a-z]+ [A-Z][a-z]+)`)
	emailPattern = regexp.MustCompile(`[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+`)
)

// findings accumulates the first owner name and contact seen across snippets.
type findings struct {
	name    string
	contact string
}

func (f *findings) scan(text string) {
	if f.name == "" {
		if m := ownerPattern.FindStringSubmatch(text); m != nil {
			f.name = m[1]
		}
	}
	if f.contact == "" {
		if m := emailPattern.FindString(text); m != "" {
			f.contact = NormalizeContact(m)
		}
	}
}

func (f *findings) complete() bool {
	return f.name != "" && f.contact != ""
}

// enrichment reports Found only when an owner name was seen. A contact on its
// own is returned but keeps the Not Found status.
func (f *findings) enrichment() entity.Enrichment {
	out := entity.Enrichment{Status: entity.EnrichmentNotFound}
	if f.name != "" {
		name := f.name
		out.OwnerName = &name
		out.Status = entity.EnrichmentFound
	}
	if f.contact != "" {
		contact := f.contact
		out.OwnerContact = &contact
	}
	return out
}

// ExtractOwner applies the owner and email heuristics to snippets in order.
func ExtractOwner(snippets []string) entity.Enrichment {
	var f findings
	for _, s := range snippets {
		f.scan(s)
		if f.complete() {
			break
		}
	}
	return f.enrichment()
}

// NormalizeContact lower-cases an email address and converts its domain to
// its ASCII form. Addresses whose domain idna rejects are only lower-cased.
func NormalizeContact(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}
	domain, err := idna.Lookup.ToASCII(email[at+1:])
	if err != nil {
		return email
	}
	return email[:at+1] + domain
}
