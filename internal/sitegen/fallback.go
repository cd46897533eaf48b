package sitegen

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"math/rand/v2"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultImageBaseURL is the image generation endpoint used for fallback pages.
const DefaultImageBaseURL = "https://image.pollinations.ai/prompt/"

//go:embed templates/fallback.html.tmpl
var templateFS embed.FS

var fallbackTemplate = template.Must(template.ParseFS(templateFS, "templates/fallback.html.tmpl"))

// Palette is a Tailwind primary colour.
type Palette struct {
	Name    string
	Primary string
	Code    string
}

// Font is a Google Fonts family.
type Font struct {
	Name  string
	Query string
}

var palettes = []Palette{
	{Name: "Blue", Primary: "blue", Code: "#2563eb"},
	{Name: "Indigo", Primary: "indigo", Code: "#4f46e5"},
	{Name: "Emerald", Primary: "emerald", Code: "#059669"},
	{Name: "Violet", Primary: "violet", Code: "#7c3aed"},
	{Name: "Cyan", Primary: "cyan", Code: "#0891b2"},
	{Name: "Rose", Primary: "rose", Code: "#e11d48"},
}

var fonts = []Font{
	{Name: "Plus Jakarta Sans", Query: "Plus+Jakarta+Sans:wght@300;400;500;600;700;800"},
	{Name: "Outfit", Query: "Outfit:wght@300;400;500;600;700;800"},
	{Name: "Inter", Query: "Inter:wght@300;400;500;600;700;800"},
	{Name: "Poppins", Query: "Poppins:wght@300;400;500;600;700;800"},
}

var layouts = []string{"split", "centered", "minimal"}

// Rand is the randomness used to pick a design. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Fallback renders a procedurally styled landing page without any AI provider.
type Fallback struct {
	imageBaseURL string
	rnd          Rand
}

// NewFallback builds a Fallback. A nil rnd uses math/rand/v2.
func NewFallback(imageBaseURL string, rnd Rand) *Fallback {
	if imageBaseURL == "" {
		imageBaseURL = DefaultImageBaseURL
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Fallback{imageBaseURL: imageBaseURL, rnd: rnd}
}

type serviceCard struct {
	Title string
	Text  string
	Image template.URL
}

type fallbackData struct {
	BusinessName string
	Initial      string
	Niche        string
	NicheDisplay string
	Location     string
	Primary      string
	ColorCode    string
	FontName     string
	FontHref     template.URL
	Layout       string
	HeroImage    template.URL
	Services     []serviceCard
}

// Render returns the fallback page for a business. It always returns HTML;
// a template failure degrades to a minimal page.
func (f *Fallback) Render(businessName, niche, location string) string {
	data := f.design(businessName, niche, location)
	var buf bytes.Buffer
	if err := fallbackTemplate.Execute(&buf, data); err != nil {
		return minimalPage(businessName)
	}
	return buf.String()
}

func (f *Fallback) design(businessName, niche, location string) fallbackData {
	palette := palettes[f.rnd.IntN(len(palettes))]
	font := fonts[f.rnd.IntN(len(fonts))]
	layout := layouts[f.rnd.IntN(len(layouts))]
	display := NicheDisplay(niche)

	hero := f.imageURL(niche, location,
		fmt.Sprintf("cinematic shot of modern %s business storefront or service in action, %s, professional photography, 8k", niche, location),
		1600, 900)

	cards := []serviceCard{
		{Title: "Residential", Text: fmt.Sprintf("Complete home %s services.", display)},
		{Title: "Commercial", Text: "Business-grade solutions."},
		{Title: "Emergency", Text: "24/7 Rapid Response."},
	}
	for i := range cards {
		cards[i].Image = f.imageURL(niche, location,
			fmt.Sprintf("professional %s service close up action shot, highly detailed", niche),
			800, 600)
	}

	return fallbackData{
		BusinessName: businessName,
		Initial:      initial(businessName),
		Niche:        niche,
		NicheDisplay: display,
		Location:     location,
		Primary:      palette.Primary,
		ColorCode:    palette.Code,
		FontName:     font.Name,
		FontHref:     template.URL("https://fonts.googleapis.com/css2?family=" + font.Query + "&display=swap"),
		Layout:       layout,
		HeroImage:    hero,
		Services:     cards,
	}
}

func (f *Fallback) imageURL(niche, location, prompt string, width, height int) template.URL {
	full := fmt.Sprintf("%s, related to %s in %s, high quality, 4k", prompt, niche, location)
	seed := f.rnd.IntN(99999) + 1
	return template.URL(fmt.Sprintf("%s%s?width=%d&height=%d&seed=%d&nologo=true",
		f.imageBaseURL, url.PathEscape(full), width, height, seed))
}

// NicheDisplay title-cases a niche for headings.
func NicheDisplay(niche string) string {
	display := cases.Title(language.English).String(strings.TrimSpace(niche))
	display = strings.ReplaceAll(display, "Plumbers", "Plumbing")
	return strings.ReplaceAll(display, "Roofers", "Roofing")
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return ""
	}
	return strings.ToUpper(string(r))
}

func minimalPage(businessName string) string {
	name := html.EscapeString(businessName)
	return "<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"UTF-8\"><title>" + name +
		"</title></head><body><h1>" + name + "</h1></body></html>\n"
}
