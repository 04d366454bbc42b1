package prompts

const acquireSpec = `Respond with a JSON object matching this exact structure:

{
  "text": "<extracted text>",
  "confidence": 85
}

Field constraints:
- text: All text visible in the image, preserving line breaks and item
  separation. Empty string if nothing is legible.
- confidence: Extraction confidence from 0 to 100, reflecting image
  quality and text legibility.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Never invent text that is not visible in the image`

const classifySpec = `Respond with a JSON object matching this exact structure:

{
  "doc_type": "<type code>",
  "confidence": 0.9,
  "organization": "<issuing organization>",
  "title": "<document title>"
}

Field constraints:
- doc_type: One of the type codes listed in the prompt (e.g.
  건강보험료_고지서, 세금_통지서). Use 기타_공공문서 when uncertain.
- confidence: Classification confidence from 0.0 to 1.0.
- organization: The issuing organization as written in the document.
  Use "알 수 없음" when it cannot be determined.
- title: The document's title line, or an empty string.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- doc_type must never be empty`

const extractSpec = `Respond with a JSON object matching this exact structure:

{
  "amount": "150,000원",
  "due_date": "2025-01-31",
  "organization": "<issuing organization>",
  "penalty_risk": "NONE",
  "action_required": true,
  "contact": "1577-1000",
  "account_number": "123-456-789012",
  "recipient_name": "<recipient>",
  "urgency_keywords_found": ["<keyword>"],
  "reasoning": "<brief rationale>"
}

Field constraints:
- amount: The payable amount selected from the candidate list, as
  written in the document, or null when nothing is owed.
- due_date: Payment or processing deadline normalized to YYYY-MM-DD,
  or null when the document sets no deadline.
- organization: The sending organization, or null.
- penalty_risk: One of NONE, LOW, MEDIUM, HIGH. NONE = informational,
  no consequence. LOW = missing the deadline carries no real penalty.
  MEDIUM = late fees or fines may accrue. HIGH = collection notice,
  arrears, or seizure; immediate action needed.
- action_required: Whether the reader must act (pay, submit, visit,
  report).
- contact: The inquiry phone number, or null.
- account_number: Payment or virtual account number, or null.
- recipient_name: The addressee if present, or null.
- urgency_keywords_found: Urgency keywords detected in the text.
- reasoning: Brief explanation of the extraction decisions.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Only keep values present in the candidate list or the document text
- When in doubt about risk, choose the higher level`

const summarizeSpec = `Respond with a JSON object matching this exact structure:

{
  "summary": "<2-3 plain-language sentences>"
}

Field constraints:
- summary: Two to three short sentences in easy Korean covering only
  what helps the document's recipient.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Do not add information absent from the provided material`

const planSpec = `Respond with a JSON object matching this exact structure:

{
  "steps": ["<step 1>", "<step 2>"],
  "deadline_info": "<deadline and consequence, or empty string>",
  "contact_info": "<organization and phone, or empty string>",
  "what_if_ignore": "<what happens if the document is ignored>"
}

Field constraints:
- steps: Ordered action steps, one action per step, each a single easy
  sentence in Korean. Include concrete places, numbers, and times.
- deadline_info: The deadline and what happens if it passes. Empty
  string when the document sets no deadline.
- contact_info: Who to call and the number. Empty string when unknown.
- what_if_ignore: A plain-language note on the consequence of ignoring
  the document.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Steps must match the action type and urgency stated in the prompt
- Never include unverified information`

const simplifySpec = `Respond with a JSON object matching this exact structure:

{
  "summary_one_line": "<one short sentence>",
  "risk_level": "LOW",
  "risk_message": "<plain-language risk explanation>",
  "what_is_this": "<2-3 easy sentences>",
  "key_points": ["<point 1>", "<point 2>"],
  "steps_easy": ["<step 1>", "<step 2>"],
  "help_channels": {
    "phone": "<number and what to say>",
    "online": "<site or app>",
    "visit": "<where to go and what to bring>"
  },
  "dont_worry": "<reassurance, or empty string>",
  "need_help_message": "<who to ask for help>"
}

Field constraints:
- summary_one_line: One short sentence (about 20 characters) saying
  what this document wants.
- risk_level: Exactly the penalty risk provided in the prompt. Never
  lower it.
- risk_message: An easy explanation of what the risk level means.
- what_is_this: Two or three short sentences explaining the document.
- key_points: Easy explanations of the amount, deadline, and sender.
- steps_easy: The action steps rewritten in the easiest possible words.
- help_channels: Phone, online, and visit guidance. Omit entries that
  are unknown.
- dont_worry: A short reassurance for low-risk documents. Must be an
  empty string when risk_level is HIGH.
- need_help_message: Who the reader can ask for help in person.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Sentences short, polite, and free of administrative jargon
- When risk is HIGH, clearly state that prompt action is needed`

var specs = map[Stage]string{
	StageAcquire:   acquireSpec,
	StageClassify:  classifySpec,
	StageExtract:   extractSpec,
	StageSummarize: summarizeSpec,
	StagePlan:      planSpec,
	StageSimplify:  simplifySpec,
}

// Spec returns the hardcoded specification for a pipeline stage.
// Specifications define the expected output format and behavioral constraints;
// they are not overridable.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
