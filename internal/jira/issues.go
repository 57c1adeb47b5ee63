package jira

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielolaszy/tix/pkg/models"
)

// viewFields is the field set fetched for ticket detail. Comments are added
// only when the caller asks for the full view.
var viewFields = []string{
	"summary",
	"description",
	"status",
	"issuetype",
	"assignee",
	"reporter",
	"priority",
	"created",
	"updated",
	"labels",
	"fixVersions",
	"components",
	"issuelinks",
	"attachment",
	"subtasks",
	"parent",
}

// GetTicket fetches the summary, status, and links of a ticket. This is the
// lightweight fetch used by the link and transition operations for previews
// and for reading back observed state.
func (c *Client) GetTicket(key string) (*models.Ticket, error) {
	var payload issuePayload
	path := fmt.Sprintf("/issue/%s?fields=summary,status,issuelinks", key)
	if err := c.get(path, &payload); err != nil {
		return nil, err
	}
	return toTicket(&payload), nil
}

// GetTicketDetail fetches the full view field set, plus comments when full
// is set, along with the raw response for JSON output.
func (c *Client) GetTicketDetail(key string, full bool) (*models.Ticket, json.RawMessage, error) {
	fields := viewFields
	if full {
		fields = append(append([]string{}, viewFields...), "comment")
	}

	path := fmt.Sprintf("/issue/%s?fields=%s&expand=renderedFields", key, strings.Join(fields, ","))
	raw, err := c.request(http.MethodGet, path, nil)
	if err != nil {
		return nil, nil, err
	}

	var payload issuePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, nil, fmt.Errorf("unexpected response for %s: %w", key, err)
	}
	return toTicket(&payload), raw, nil
}

// Myself calls the current-user endpoint, verifying that the configured
// credentials authenticate against the site.
func (c *Client) Myself() (*models.User, error) {
	var payload userPayload
	if err := c.get("/myself", &payload); err != nil {
		return nil, err
	}
	return &models.User{
		AccountID:    payload.AccountID,
		DisplayName:  payload.DisplayName,
		EmailAddress: payload.EmailAddress,
		Active:       payload.Active,
	}, nil
}

func toTicket(payload *issuePayload) *models.Ticket {
	fields := &payload.Fields

	ticket := &models.Ticket{
		Key:                 payload.Key,
		Summary:             fields.Summary,
		Status:              fields.Status.Name,
		IssueType:           fields.IssueType.Name,
		Priority:            fields.Priority.Name,
		Created:             fields.Created,
		Updated:             fields.Updated,
		Labels:              fields.Labels,
		Description:         textBody(fields.Description),
		RenderedDescription: payload.RenderedFields.Description,
	}

	if fields.Assignee != nil {
		ticket.Assignee = fields.Assignee.DisplayName
	}
	if fields.Reporter != nil {
		ticket.Reporter = fields.Reporter.DisplayName
	}

	for _, v := range fields.FixVersions {
		ticket.FixVersions = append(ticket.FixVersions, v.Name)
	}
	for _, comp := range fields.Components {
		ticket.Components = append(ticket.Components, comp.Name)
	}
	for _, link := range fields.IssueLinks {
		ticket.Links = append(ticket.Links, toIssueLink(link))
	}
	for _, att := range fields.Attachments {
		ticket.Attachments = append(ticket.Attachments, models.Attachment{
			Filename: att.Filename,
			Size:     att.Size,
		})
	}
	for _, sub := range fields.Subtasks {
		ticket.Subtasks = append(ticket.Subtasks, toSubtask(sub))
	}
	if fields.Parent != nil {
		parent := toSubtask(*fields.Parent)
		ticket.Parent = &parent
	}
	if fields.Comment != nil {
		for _, comment := range fields.Comment.Comments {
			ticket.Comments = append(ticket.Comments, models.Comment{
				Author:  comment.Author.DisplayName,
				Created: comment.Created,
				Body:    textBody(comment.Body),
			})
		}
	}

	return ticket
}

func toIssueLink(payload issueLinkPayload) models.IssueLink {
	link := models.IssueLink{
		ID: payload.ID,
		Type: models.LinkType{
			ID:      payload.Type.ID,
			Name:    payload.Type.Name,
			Inward:  payload.Type.Inward,
			Outward: payload.Type.Outward,
		},
	}
	if payload.OutwardIssue != nil {
		peer := toLinkedTicket(*payload.OutwardIssue)
		link.OutwardIssue = &peer
	}
	if payload.InwardIssue != nil {
		peer := toLinkedTicket(*payload.InwardIssue)
		link.InwardIssue = &peer
	}
	return link
}

func toLinkedTicket(ref issueRefPayload) models.LinkedTicket {
	return models.LinkedTicket{
		Key:     ref.Key,
		Summary: ref.Fields.Summary,
		Status:  ref.Fields.Status.Name,
	}
}

func toSubtask(ref issueRefPayload) models.Subtask {
	return models.Subtask{
		Key:     ref.Key,
		Summary: ref.Fields.Summary,
		Status:  ref.Fields.Status.Name,
	}
}

// textBody renders a body field that is either a plain string or an
// Atlassian Document Format object. ADF bodies fall back to their compact
// JSON form rather than being dropped.
func textBody(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
