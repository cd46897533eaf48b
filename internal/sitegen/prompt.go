// Package sitegen produces marketing landing pages for a business, either
// through a generative AI provider or a procedural fallback template.
package sitegen

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a world-class frontend developer."

// BuildPrompt returns the page request sent to the AI provider.
func BuildPrompt(businessName, niche, location string) string {
	return fmt.Sprintf(`You are an expert web developer. Capture the essence of this business:
Business Name: %[1]s
Niche: %[2]s
Location: %[3]s

Task: Create a stunning, high-converting, single-page landing page for this business.

Requirements:
1. Use Tailwind CSS via CDN for all styling.
2. The design MUST be modern, clean, and professional (dark or light mode, whichever fits the niche best).
3. Include sections: Hero (with catchy headline), Services, About Us, Testimonials (make up 2 realistic ones), and Contact Form (visual only).
4. Use "https://source.unsplash.com/1600x900/?%[2]s" for the hero background image.
5. Use "https://source.unsplash.com/800x600/?%[2]s,work" for service images.
6. Return ONLY the raw HTML code. Do not wrap in markdown code blocks. Start with <!DOCTYPE html>.
`, businessName, niche, location)
}

// CleanHTML strips markdown code fences from a model response.
func CleanHTML(content string) string {
	content = strings.ReplaceAll(content, "```html", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content)
}
