// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"text/template"
)

// systemPrompt is sent with every request regardless of strategy.
const systemPrompt = "You extract company founding facts from narrative text. Follow the output instructions exactly and do not invent facts that the text does not state."

// singleShotPromptTmpl asks for every company in the document as one JSON array.
var singleShotPromptTmpl = template.Must(template.New("single-shot").Parse(`Extract structured company information from the following text in JSON format.
Return a JSON array where each element is an object with keys:
- company_name (string)
- founding_date (YYYY-MM-DD, fill missing day/month with 01)
- founders (list of strings)
In certain scenarios, the complete date information may not be available. To handle such cases:
If only the year is provided, default the date to January 1st of that year.
If the year and month are provided, default the date to the 1st day of the specified month.

If no company info is found, return an empty array [].

Text:
{{.Unit}}
`))

// toolPromptTmpl asks for one save_company call per company in a paragraph.
var toolPromptTmpl = template.Must(template.New("tools").Parse(`Read the paragraph below and find every company whose founding it describes.

For each company, call the {{.Tool}} tool exactly once with:
- company_name: the company name as written in the text
- founding_date: "YYYY" if only the year is known, "YYYY-MM" if the year and month are known, or "YYYY-MM-DD" for a full date
- founders: the list of founder names (an empty list if none are named)

If the paragraph does not describe any company founding, reply with "no companies found" and do not call the tool.

Paragraph:
{{.Unit}}
`))

// SaveCompanyTool is the tool offered to the model in tool-calling mode.
var SaveCompanyTool = ToolSpec{
	Name:        "save_company",
	Description: "Save one company's name, founding date, and founders. Call once per company found in the text.",
	Properties: map[string]any{
		"company_name": map[string]any{
			"type":        "string",
			"description": "Company name as written in the text.",
		},
		"founding_date": map[string]any{
			"type":        "string",
			"description": "Founding date as YYYY, YYYY-MM, or YYYY-MM-DD.",
		},
		"founders": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Founder names in the order the text gives them.",
		},
	},
	Required: []string{"company_name", "founding_date", "founders"},
}

// renderPrompt executes tmpl for one extraction unit.
func renderPrompt(tmpl *template.Template, unit string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Unit string
		Tool string
	}{Unit: unit, Tool: SaveCompanyTool.Name}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
