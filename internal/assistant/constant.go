package assistant

import "time"

// Log prefixes
const (
	LogPrefixDraft      = "internal.assistant.DraftSchedule"
	LogPrefixCommentary = "internal.assistant.Commentary"
	LogPrefixReply      = "internal.assistant.Reply"
)

// Prompts
const (
	PromptJSONOnlySystem = `You are a composed, efficient personal planning assistant with a dry sense of humour. You MUST respond ONLY with a valid JSON object. No explanations, no markdown.`

	PromptDraft = `The user wants to finish these tasks today: %s.

Plan the day. Consider:
- Task complexity and priority
- Realistic time estimates in MINUTES (a quick task is 15-30, a medium task 45-90, a complex task 90-180)
- Ordering by priority and dependencies

Return ONLY a JSON object of this shape. "duration" MUST be a number of minutes, estimated per task:
{
  "tasks": [
    {"name": "task name exactly as given", "duration": 45, "priority": "high|medium|low", "description": "brief description"}
  ],
  "commentary": "One short remark about the plan"
}`

	PromptCommentarySystem = `You are a composed, efficient personal planning assistant. Be concise and encouraging.`

	PromptCommentary = `Give a brief, motivating remark about the user's progress.

Current situation:
- Task: %s
- Time remaining: %d minutes
- Next break: %s
- Progress: %d/%d tasks completed

Reply in 2-3 sentences of plain text.`

	PromptChatSystem = `You are a composed, efficient personal planning assistant helping the user through their day. Answer briefly in plain text.`

	PromptNoBreak = "none scheduled"
)

// Generation settings
const (
	DraftTemperature = 0.3
	DraftMaxTokens   = 2000

	CommentaryTemperature = 0.7
	CommentaryMaxTokens   = 150

	ChatTemperature   = 0.7
	ChatMaxTokens     = 200
	ChatHistoryWindow = 5

	DefaultTimeout = 30 * time.Second
)

// Canned texts
const (
	MessageDraftFallback = "I've created an optimized schedule for your tasks. Let's make today productive, shall we?"
	MessageDraftDefault  = "Schedule created successfully."

	MessageCommentaryTask  = "You're currently working on a task with %d minutes remaining. "
	MessageCommentaryBreak = "Your next break is in %d minutes. "
	MessageCommentaryCount = "You've completed %d of %d tasks. Excellent work."

	MessageChatEmpty   = "Understood. How may I assist you further?"
	MessageChatDelay   = "I understand. Unfortunately, I'm experiencing a momentary processing delay. Please try asking again, or we can continue with your scheduled tasks."
	MessageChatQuota   = "I've reached my processing limit for the moment. Please try again in a few moments."
	MessageChatTimeout = "The request is taking longer than expected. Please try again."
)

// Priorities accepted from drafts
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)
