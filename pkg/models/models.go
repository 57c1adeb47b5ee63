// Package models defines data structures shared across the application.
package models

// LinkType is a named relationship category between two tickets. The outward
// and inward labels describe how the relationship reads from each end, e.g.
// outward "blocks" and inward "is blocked by".
type LinkType struct {
	// ID is the server-assigned identifier of the link type
	ID string

	// Name is the canonical link type name (e.g. "Blocks")
	Name string

	// Outward is the label shown from the acting ticket's side
	Outward string

	// Inward is the label shown from the receiving ticket's side
	Inward string
}

// LinkedTicket is the remote end of an issue link, as embedded in the
// link payload.
type LinkedTicket struct {
	Key     string
	Summary string
	Status  string
}

// IssueLink is a directed edge between two tickets. Exactly one of
// OutwardIssue and InwardIssue is set, depending on which side of the link
// the fetched ticket is on.
type IssueLink struct {
	// ID identifies the link itself, used for deletion
	ID string

	// Type is the link type the edge is categorized under
	Type LinkType

	// OutwardIssue is the peer when the link points outward from the ticket
	OutwardIssue *LinkedTicket

	// InwardIssue is the peer when the link points inward at the ticket
	InwardIssue *LinkedTicket
}

// Transition is a legal edge from a ticket's current workflow status to
// another status. The available set depends on the ticket's current state
// and is recomputed by the server on every fetch.
type Transition struct {
	// ID is the transition identifier submitted to execute it
	ID string

	// Name is the transition's display name (e.g. "Start Progress")
	Name string

	// To is the destination status name
	To string
}

// Comment is a single ticket comment. Body holds the comment text when the
// server returns a plain string, or the compact JSON of the document body
// otherwise.
type Comment struct {
	Author  string
	Created string
	Body    string
}

// Attachment describes a file attached to a ticket.
type Attachment struct {
	Filename string
	Size     int64
}

// Subtask is a minimal reference to a related ticket (subtask or parent).
type Subtask struct {
	Key     string
	Summary string
	Status  string
}

// Ticket represents a Jira issue with the fields the tix commands consume.
// Timestamps are kept in the server's ISO form and formatted at render time.
// Optional fields are empty or nil when the server omits them.
type Ticket struct {
	// Key is the project-scoped identifier (e.g. "PROJ-123")
	Key string

	// Summary is the ticket's title
	Summary string

	// Status is the current workflow status name
	Status string

	// IssueType is the issue type name (e.g. "Story", "Bug")
	IssueType string

	// Priority is the priority name
	Priority string

	// Assignee is the assignee's display name, empty when unassigned
	Assignee string

	// Reporter is the reporter's display name
	Reporter string

	Created string
	Updated string

	Labels      []string
	FixVersions []string
	Components  []string

	// Description is the plain description text when the server returns a
	// string body
	Description string

	// RenderedDescription is the server-rendered HTML of the description
	RenderedDescription string

	Comments    []Comment
	Links       []IssueLink
	Attachments []Attachment
	Subtasks    []Subtask
	Parent      *Subtask
}

// User represents the authenticated Jira account, as returned by the
// current-user endpoint.
type User struct {
	AccountID    string
	DisplayName  string
	EmailAddress string
	Active       bool
}
