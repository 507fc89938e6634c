package prompt

const careerTemplate = `
Based on the following user profile:
Highest Qualification: {{orNotSpecified .Qualification}}
{{- if .FieldOfStudy}}
Field of Study: {{.FieldOfStudy}}
{{- end}}
{{- if .EducationNotes}}
Education Journey Notes: {{.EducationNotes}}
{{- end}}
- Skills: {{list .Skills}}
- Interests: {{list .Interests}}
- Experience/Journey: {{orNotSpecified .Experience}}

Here is potentially relevant expert context retrieved for this profile. Consider it ALONGSIDE the user's direct input:
"""
{{.Context}}
"""

Using ALL of the information above (user profile AND retrieved context), respond with a JSON object of the following structure.
Output ONLY the JSON object. Do not add any text before or after it.

The JSON structure must be:
{
  "suggestedRoles": [
    {
      "title": "string (e.g. Software Engineer, UX Designer, Marine Biologist)",
      "description": "string (2-3 sentences on why this role suits the user, given the profile and the retrieved context)",
      "relevanceScore": "number (0.0 to 1.0, higher means more relevant to the skills, interests and context)",
      "roadmap": "string (3-5 concise, actionable steps or key learning areas separated by '\n', e.g. '1. Master Python and SQL.\n2. Learn a visualization tool such as Tableau.\n3. Build portfolio projects with real datasets.')",
      "estimatedPayBracket": "string (one of 'Entry-Level', 'Average', 'Above Average', 'High', 'Varies Widely')",
      "marketDemand": "string (one of 'Niche', 'Stable', 'Medium', 'High', 'Very High')",
      "learningEffort": "string (one of 'Low', 'Medium', 'High', 'Intensive')"
    }
  ],
  "keyConsiderations": "string (one paragraph of key considerations for this user and the suggested paths, using the retrieved context where it applies. Max 200 words.)",
  "generalAdvice": "string (one paragraph of general career advice drawing on the retrieved context or the user's overall situation. Max 200 words.)"
}

Generate 3 to 5 diverse suggestedRoles, each with a practical, high-level roadmap.
Align the suggestions with the user's skills, interests and the expert context.
Provide ONLY the JSON object.
`

const timetableTemplate = `
Job Title: {{.JobTitle}}
Job Description: {{.JobDescription}}
Roadmap: {{.Roadmap}}
User's Desired Timeframe for Learning: {{.Timeframe}}

Here is potentially relevant expert context on learning and resources:
"""
{{.Context}}
"""

Using this job information, the roadmap, the user's timeframe AND the expert context, create a structured, personalized learning timetable.
Output ONLY the JSON object. Do not add any text before or after it.

MOST IMPORTANT RULE: the TOTAL DURATION of the timetable (the sum of all phase durations and week ranges) MUST match the conversion below for the user's timeframe.
{{- range .Rules}}
- "{{.Phrase}}" means the plan MUST cover {{if .Approximate}}approximately{{else}}EXACTLY{{end}} {{.Weeks}} weeks in total{{if .Hint}} ({{.Hint}}){{end}}.
{{- end}}
- For any other duration (e.g. "dedicated", "a few weeks"), choose a reasonable, concise interpretation unless a long duration is clearly implied, and state the assumed total weeks in the introductoryNote.
If the roadmap is too large for the timeframe, simplify it, reduce the tasks per week or merge topics. NEVER extend the plan beyond the weeks given by this conversion.

CONSISTENCY RULE: the 'title' (e.g. 'Personalized 8-Week Learning Plan...') and the 'introductoryNote' MUST state the same total number of weeks as the 'phases' and 'weeks' structure actually covers.

The JSON structure must be:
{
  "title": "string (e.g. 'Personalized 8-Week Learning Plan for Aspiring UX Designer', MUST match the total weeks)",
  "introductoryNote": "string (a short motivational note, max 100 words, that states the user's timeframe and its total weeks, e.g. 'Over the next 8 weeks (2 months)...')",
  "phases": [
    {
      "phaseTitle": "string (e.g. 'Phase 1: Foundations & Core Concepts')",
      "phaseDuration": "string (e.g. '4 Weeks', 'Weeks 5-8'; all phases together add up to the total plan duration)",
      "summary": "string (what this phase covers)",
      "weeks": [
        {
          "weekRange": "string (e.g. 'Week 1-2', 'Week 3'; the week ranges add up to the phaseDuration)",
          "focusArea": "string (e.g. 'Understanding UX Principles')",
          "tasks": [
            {
              "taskDescription": "string (a specific, actionable task)",
              "skillsToFocus": ["string", "string"],
              "suggestedResources": [
                {
                  "type": "string (e.g. 'Online Course', 'Book', 'Tutorial', 'Project', 'Community')",
                  "details": "string (e.g. 'Coursera: Google UX Design Certificate - Course 1')"
                }
              ]
            }
          ]
        }
      ]
    }
  ],
  "generalTips": ["string", "string"]
}

Adapt the number of phases and their week counts so the whole plan matches the user's timeframe.
'phaseDuration' and 'weekRange' MUST reflect the breakdown of that total.
Keep tasks per week short for 1-2 month plans; longer plans may carry more detail.
Make every task actionable and every resource practical.
Provide ONLY the JSON object.
`
