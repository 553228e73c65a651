package ai

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

var promptFuncs = template.FuncMap{
	"join": strings.Join,
}

var (
	ideaAnalysisPrompt = template.Must(template.New("idea-analysis").Funcs(promptFuncs).Parse(`You are an experienced startup advisor.
Review the following startup idea and answer with a single JSON object only.

Problem: {{.ProblemStatement}}
Solution: {{.Solution}}
{{- if .TargetMarket}}
Target market: {{.TargetMarket}}
{{- end}}
{{- if .Industry}}
Industry: {{.Industry}}
{{- end}}

The JSON object must have these keys:
"score" (integer 1 to 10), "summary" (string), "strengths" (array of strings),
"weaknesses" (array of strings), "suggestions" (array of strings),
"marketPotential" (one of "low", "medium", "high").
`))

	businessModelPrompt = template.Must(template.New("business-model").Funcs(promptFuncs).Parse(`You are an experienced startup advisor.
Suggest a business model canvas for the startup below and answer with a single JSON object only.

Startup: {{.StartupName}}
Industry: {{.Industry}}
{{- if .Description}}
Description: {{.Description}}
{{- end}}
{{- if .TargetAudience}}
Target audience: {{.TargetAudience}}
{{- end}}

The JSON object must have these keys:
"modelType" (one of subscription, marketplace, freemium, transactional, advertising, licensing, hardware, services, other),
"valuePropositions", "customerSegments", "channels", "revenueStreams", "keyActivities", "costStructure" (arrays of strings),
"rationale" (string).
`))

	pitchDeckPrompt = template.Must(template.New("pitch-deck").Funcs(promptFuncs).Parse(`You are an experienced startup advisor.
Draft an investor pitch deck outline for the startup below and answer with a single JSON object only.

Startup: {{.Startup.Name}}
{{- if .Startup.Industry}} ({{.Startup.Industry}}){{end}}
{{- if .Startup.Description}}
Description: {{.Startup.Description}}
{{- end}}
{{- with .Idea}}
Problem: {{.ProblemStatement}}
Solution: {{.Solution}}
{{- if .UniqueValueProposition}}
Unique value: {{.UniqueValueProposition}}
{{- end}}
{{- end}}
{{- with .Audience}}
Audience: {{.Segment}}
{{- if .PainPoints}}
Pain points: {{join .PainPoints "; "}}
{{- end}}
{{- end}}
{{- with .BusinessModel}}
Business model: {{.ModelType}}
{{- if .RevenueStreams}}
Revenue streams: {{join .RevenueStreams "; "}}
{{- end}}
{{- end}}
{{- with .Competition}}
{{- if .CompetitiveAdvantage}}
Competitive advantage: {{.CompetitiveAdvantage}}
{{- end}}
{{- end}}
{{- with .Revenue}}
{{- if .PricingStrategy}}
Pricing: {{.PricingStrategy}}
{{- end}}
{{- end}}
{{- with .Mvp}}
{{- if .Timeline}}
MVP timeline: {{.Timeline}}
{{- end}}
{{- end}}

The JSON object must have these keys:
"title" (string) and "slides" (array of objects with "heading" (string),
"bullets" (array of strings) and "notes" (string)). Use between 5 and 15 slides.
`))
)

func renderPrompt(tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "render %s prompt", tpl.Name())
	}

	return buf.String(), nil
}
