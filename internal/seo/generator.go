// Package seo generates landing-page prose for role kits via the LLM client.
// Generated copy is validated against the role-page JSON schema before it is
// returned, so malformed model output never reaches publishing.
package seo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/role-taxonomy/internal/llm"
	"github.com/jonathan/role-taxonomy/internal/schemas"
	"github.com/jonathan/role-taxonomy/internal/taxonomy"
	"github.com/jonathan/role-taxonomy/internal/types"
	schemadocs "github.com/jonathan/role-taxonomy/schemas"
)

// RolePage is the structured SEO copy for one role kit.
type RolePage struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	MetaDescription string    `json:"meta_description"`
	Intro           string    `json:"intro"`
	Sections        []Section `json:"sections"`
	FAQ             []FAQItem `json:"faq,omitempty"`
}

// Section is one body section of the page.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

const pagePromptTemplate = `You are writing an SEO landing page for an interview practice product.

Role: %s
Domain: %s
Seniority: %s
Focus skills: %s

Return ONLY a JSON object with this shape:
{
  "slug": "kebab-case-url-slug",
  "title": "page title, 10-80 chars",
  "meta_description": "meta description, 50-170 chars",
  "intro": "opening paragraph, at least 100 chars",
  "sections": [{"heading": "...", "body": "..."}],
  "faq": [{"question": "...", "answer": "..."}]
}

Use 2-6 sections. Write for candidates preparing for interviews in this role.`

// GeneratePage asks the LLM for landing-page copy for a kit and validates
// the result against the role-page schema.
func GeneratePage(ctx context.Context, client llm.Client, kit *types.RoleKit) (*RolePage, error) {
	skills := "none listed"
	if len(kit.FocusSkills) > 0 {
		skills = strings.Join(kit.FocusSkills, ", ")
	}
	prompt := fmt.Sprintf(pagePromptTemplate,
		kit.Name, taxonomy.DomainLabel(kit.Domain), kit.Seniority.Label(), skills)

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate role page: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(schemadocs.RolePageSchema, raw); err != nil {
		return nil, fmt.Errorf("generated role page failed validation: %w", err)
	}

	var page RolePage
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal role page: %w", err)
	}
	return &page, nil
}
