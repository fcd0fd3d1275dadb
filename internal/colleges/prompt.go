package colleges

import "fmt"

const promptTemplate = `You are an expert education counselor. Recommend 8 to 10 real colleges or universities for a student who wants to study %q, located in or near %q.

Respond with ONLY a JSON array, no Markdown and no commentary. Each element must be an object with exactly these keys:
- "name": string
- "location": string, city and state or country
- "type": string, for example "Public", "Private" or "Deemed University"
- "ranking": string, for example "NIRF #3"
- "programs": array of strings, relevant programs offered
- "description": string, one or two sentences
- "website": string, official URL
- "rating": number between 0 and 5
- "student_count": string, for example "10,000+"
- "established": string, year founded
- "fees": string, approximate annual fees

Prefer well-known, accredited institutions and order them from most to least recommended.`

func buildPrompt(field, location string) string {
	return fmt.Sprintf(promptTemplate, field, location)
}
