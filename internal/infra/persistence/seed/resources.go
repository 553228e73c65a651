// Package seed holds the curated resource library loaded into every store on start.
package seed

import "launchpad/internal/domain/entity"

func industry(name string) *string { return &name }

// Resources returns a fresh copy of the resource library. Ids are assigned by the store.
func Resources() []*entity.Resource {
	return []*entity.Resource{
		{
			Title:       "How to Write a Lean Canvas",
			Description: "One-page business plan template for early-stage founders.",
			URL:         "https://leanstack.com/lean-canvas",
			Category:    "Business Planning",
			Type:        "template",
			Tags:        []string{"canvas", "planning"},
		},
		{
			Title:       "The Mom Test",
			Description: "How to talk to customers and learn if your business is a good idea.",
			URL:         "https://www.momtestbook.com",
			Category:    "Customer Discovery",
			Type:        "article",
			Tags:        []string{"interviews", "validation"},
		},
		{
			Title:       "Market Sizing: TAM, SAM and SOM",
			Description: "Estimating the addressable market from the top down and the bottom up.",
			URL:         "https://www.ycombinator.com/library/market-sizing",
			Category:    "Market Research",
			Type:        "article",
			Tags:        []string{"market", "tam"},
		},
		{
			Title:       "Building Your MVP",
			Description: "Scoping the smallest product that tests your riskiest assumption.",
			URL:         "https://www.ycombinator.com/library/mvp",
			Category:    "Product Development",
			Type:        "video",
			Tags:        []string{"mvp", "product"},
		},
		{
			Title:       "Pricing Your SaaS Product",
			Description: "Value-based pricing, tiers and free trials for software businesses.",
			URL:         "https://www.priceintelligently.com/saas-pricing",
			Category:    "Revenue",
			Type:        "article",
			Industry:    industry("Technology"),
			Tags:        []string{"pricing", "saas"},
		},
		{
			Title:       "Startup Financial Model Template",
			Description: "Three-year revenue, cost and cash-flow projections in a spreadsheet.",
			URL:         "https://www.foresight.is/financial-model-template",
			Category:    "Finance",
			Type:        "template",
			Tags:        []string{"finance", "projections"},
		},
		{
			Title:       "Pitch Deck Guide",
			Description: "The slides investors expect and the order to present them in.",
			URL:         "https://www.sequoiacap.com/article/writing-a-business-plan",
			Category:    "Fundraising",
			Type:        "article",
			Tags:        []string{"pitch", "investors"},
		},
		{
			Title:       "Healthcare Regulation Primer",
			Description: "HIPAA and medical device basics for digital health founders.",
			URL:         "https://www.hhs.gov/hipaa/for-professionals",
			Category:    "Legal",
			Type:        "course",
			Industry:    industry("Healthcare"),
			Tags:        []string{"compliance", "health"},
		},
		{
			Title:       "Fintech Licensing Checklist",
			Description: "Money transmission, KYC and AML obligations for payment startups.",
			URL:         "https://www.fincen.gov/msb-registrant-search",
			Category:    "Legal",
			Type:        "template",
			Industry:    industry("Finance"),
			Tags:        []string{"compliance", "payments"},
		},
		{
			Title:       "Competitive Analysis Framework",
			Description: "Mapping direct and indirect competitors and writing a SWOT.",
			URL:         "https://www.hubspot.com/competitive-analysis",
			Category:    "Market Research",
			Type:        "template",
			Tags:        []string{"competition", "swot"},
		},
		{
			Title:       "E-commerce Unit Economics",
			Description: "Customer acquisition cost, margins and lifetime value for online stores.",
			URL:         "https://www.shopify.com/blog/unit-economics",
			Category:    "Revenue",
			Type:        "article",
			Industry:    industry("Retail"),
			Tags:        []string{"ecommerce", "ltv"},
		},
		{
			Title:       "No-Code Prototyping Tools",
			Description: "Ship a clickable prototype without writing code.",
			URL:         "https://www.figma.com/prototyping",
			Category:    "Product Development",
			Type:        "tool",
			Tags:        []string{"prototype", "design"},
		},
	}
}
