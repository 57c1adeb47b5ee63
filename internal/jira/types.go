package jira

import (
	"encoding/json"
)

// Wire payloads for the API responses. These are decoded once per request
// and converted to pkg/models values; rendering code never walks raw JSON.

type namePayload struct {
	Name string `json:"name"`
}

type userPayload struct {
	AccountID    string `json:"accountId"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	Active       bool   `json:"active"`
}

type linkTypePayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Inward  string `json:"inward"`
	Outward string `json:"outward"`
}

// issueRefPayload is the abbreviated issue object embedded in links,
// subtasks, and parent references.
type issueRefPayload struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string      `json:"summary"`
		Status  namePayload `json:"status"`
	} `json:"fields"`
}

type issueLinkPayload struct {
	ID           string           `json:"id"`
	Type         linkTypePayload  `json:"type"`
	OutwardIssue *issueRefPayload `json:"outwardIssue"`
	InwardIssue  *issueRefPayload `json:"inwardIssue"`
}

type transitionPayload struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	To   namePayload `json:"to"`
}

type attachmentPayload struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// commentPayload carries one comment. Body is raw because the v3 API
// returns either a plain string or an Atlassian Document Format object.
type commentPayload struct {
	Author  userPayload     `json:"author"`
	Created string          `json:"created"`
	Body    json.RawMessage `json:"body"`
}

type issueFieldsPayload struct {
	Summary     string              `json:"summary"`
	Description json.RawMessage     `json:"description"`
	Status      namePayload         `json:"status"`
	IssueType   namePayload         `json:"issuetype"`
	Priority    namePayload         `json:"priority"`
	Assignee    *userPayload        `json:"assignee"`
	Reporter    *userPayload        `json:"reporter"`
	Created     string              `json:"created"`
	Updated     string              `json:"updated"`
	Labels      []string            `json:"labels"`
	FixVersions []namePayload       `json:"fixVersions"`
	Components  []namePayload       `json:"components"`
	IssueLinks  []issueLinkPayload  `json:"issuelinks"`
	Attachments []attachmentPayload `json:"attachment"`
	Subtasks    []issueRefPayload   `json:"subtasks"`
	Parent      *issueRefPayload    `json:"parent"`
	Comment     *struct {
		Comments []commentPayload `json:"comments"`
	} `json:"comment"`
}

type issuePayload struct {
	Key            string             `json:"key"`
	Fields         issueFieldsPayload `json:"fields"`
	RenderedFields struct {
		Description string `json:"description"`
	} `json:"renderedFields"`
}
