package analysis

import "strings"

// promptTemplate demands bare JSON and shows the exact shape wanted. The
// resume text is spliced in with strings.Replace on a single marker, so
// literal braces (or percent signs) inside the resume can never be
// mistaken for formatting directives.
const promptTemplate = `Analyze this resume and output ONLY valid JSON with no other text.

@@RESUME@@

Output ONLY this JSON format (no extra text):
{"overall_impression":"summary here","strengths":["item1","item2","item3"],"weaknesses":["item1","item2"],"key_skills":["item1","item2","item3","item4"],"recommendations":["item1","item2","item3"]}`

// BuildPrompt embeds the trimmed resume text into the instruction template.
func BuildPrompt(resumeCore string) string {
	return strings.Replace(promptTemplate, "@@RESUME@@", resumeCore, 1)
}
