package copilot

// Scenario is an example automation prompt shown by the copilot to help
// users get started.
type Scenario struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// scenarios is assembled once and never mutated; enumeration order is the
// declaration order.
var scenarios = []Scenario{
	{
		Title:  "New Google Sheets Row to Slack Message",
		Prompt: "When a new row is added to my Google Sheet, send a message to my team's Slack channel with the row contents.",
	},
	{
		Title:  "Sheets to Airtable with Conditions",
		Prompt: "Copy new Google Sheets rows to Airtable, but only when the status column says approved.",
	},
	{
		Title:  "Conditional Email from Sheets",
		Prompt: "Send an email for each new Google Sheets row when the amount column is greater than 1000.",
	},
	{
		Title:  "Alternating Discord and Slack Posts",
		Prompt: "Every hour, post an update alternating between my Discord server and my Slack workspace.",
	},
	{
		Title:  "Scheduled Discord Message",
		Prompt: "Send a regular message to my Discord channel every morning at 9am.",
	},
	{
		Title:  "Stripe Customer Poems to WordPress",
		Prompt: "Write poems about new stripe customers and post them as wordpress posts.",
	},
	{
		Title:  "Failed Stripe Payment Notifications",
		Prompt: "Notify me on Slack whenever a Stripe payment fails, including the customer and amount.",
	},
	{
		Title:  "Sheets Rows to AI Blog Posts",
		Prompt: "Turn each new Google Sheets row into a blog post draft written by AI.",
	},
	{
		Title:  "HubSpot to Mailchimp Sync",
		Prompt: "Keep my Mailchimp audience in sync with new HubSpot contacts.",
	},
}

// Catalog returns the fixed scenario list. Callers must not mutate the
// returned slice.
func Catalog() []Scenario {
	return scenarios
}
