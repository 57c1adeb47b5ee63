package jira

import (
	"net/http"

	"github.com/danielolaszy/tix/internal/logging"
	"github.com/danielolaszy/tix/pkg/models"
)

// GetLinkTypes fetches the global link type catalog, fresh on every call.
func (c *Client) GetLinkTypes() ([]models.LinkType, error) {
	var payload struct {
		IssueLinkTypes []linkTypePayload `json:"issueLinkTypes"`
	}
	if err := c.get("/issueLinkType", &payload); err != nil {
		return nil, err
	}

	types := make([]models.LinkType, 0, len(payload.IssueLinkTypes))
	for _, lt := range payload.IssueLinkTypes {
		types = append(types, models.LinkType{
			ID:      lt.ID,
			Name:    lt.Name,
			Inward:  lt.Inward,
			Outward: lt.Outward,
		})
	}
	return types, nil
}

// ResolveLinkType matches a free-text name against the catalog. A failed
// match returns a *LinkTypeNotFoundError carrying the full catalog.
func (c *Client) ResolveLinkType(name string) (*models.LinkType, error) {
	types, err := c.GetLinkTypes()
	if err != nil {
		return nil, err
	}
	lt := matchLinkType(types, name)
	if lt == nil {
		return nil, &LinkTypeNotFoundError{Query: name, Available: types}
	}
	logging.Debug("resolved link type", "query", name, "name", lt.Name, "id", lt.ID)
	return lt, nil
}

// GetIssueLinks returns the ticket's current links.
func (c *Client) GetIssueLinks(key string) ([]models.IssueLink, error) {
	ticket, err := c.GetTicket(key)
	if err != nil {
		return nil, err
	}
	return ticket.Links, nil
}

// LinkDirection selects the direction label and peer ticket for displaying
// a link. The Jira UI renders links opposite from the wire's naming: a link
// carrying outwardIssue is shown with the type's outward label, one
// carrying inwardIssue with the inward label. This is the read-side half of
// the convention createLink applies on the write side; changing one without
// the other makes freshly created links read backwards.
func LinkDirection(link models.IssueLink) (string, models.LinkedTicket) {
	if link.OutwardIssue != nil {
		return link.Type.Outward, *link.OutwardIssue
	}
	if link.InwardIssue != nil {
		return link.Type.Inward, *link.InwardIssue
	}
	// A link always carries one of the two; fall back to the type name so a
	// malformed payload stays visible instead of vanishing.
	return link.Type.Name, models.LinkedTicket{}
}

// LinkRequest describes one link creation: source acts on target through
// the named type ("PROJ-1 blocks PROJ-2").
type LinkRequest struct {
	Source   string
	Target   string
	TypeName string
	Comment  string
	DryRun   bool
}

// LinkResult reports what ExecuteLink resolved and fetched for the preview,
// and whether the link was actually submitted.
type LinkResult struct {
	Type    models.LinkType
	Source  *models.Ticket
	Target  *models.Ticket
	Created bool
}

// ExecuteLink resolves the link type, fetches both tickets for the preview,
// and creates the link unless the request is a dry run. A dry run performs
// the same read requests but no mutation.
func (c *Client) ExecuteLink(req LinkRequest) (*LinkResult, error) {
	linkType, err := c.ResolveLinkType(req.TypeName)
	if err != nil {
		return nil, err
	}

	source, err := c.GetTicket(req.Source)
	if err != nil {
		return nil, err
	}
	target, err := c.GetTicket(req.Target)
	if err != nil {
		return nil, err
	}

	result := &LinkResult{
		Type:   *linkType,
		Source: source,
		Target: target,
	}

	if req.DryRun {
		return result, nil
	}

	if err := c.createLink(req.Source, req.Target, linkType.Name, req.Comment); err != nil {
		return nil, err
	}
	result.Created = true
	return result, nil
}

// createLink submits the link payload. The Jira UI displays links opposite
// from the API's inward/outward naming, so the source key goes in the
// inwardIssue slot and the target in outwardIssue; assigning them the
// literal way round makes the UI read the relationship backwards even
// though the create succeeds.
func (c *Client) createLink(source, target, typeName, comment string) error {
	payload := map[string]any{
		"type":         map[string]string{"name": typeName},
		"inwardIssue":  map[string]string{"key": source},
		"outwardIssue": map[string]string{"key": target},
	}
	if comment != "" {
		payload["comment"] = map[string]string{"body": comment}
	}

	_, err := c.request(http.MethodPost, "/issueLink", payload)
	return err
}

// RemoveLink deletes a link by id after locating it on the ticket. When the
// id is not present the ticket's links are returned in the error and no
// DELETE is issued.
func (c *Client) RemoveLink(key, linkID string) (*models.IssueLink, error) {
	links, err := c.GetIssueLinks(key)
	if err != nil {
		return nil, err
	}

	var removed *models.IssueLink
	for i := range links {
		if links[i].ID == linkID {
			removed = &links[i]
			break
		}
	}
	if removed == nil {
		return nil, &LinkNotFoundError{Key: key, LinkID: linkID, Links: links}
	}

	if _, err := c.request(http.MethodDelete, "/issueLink/"+linkID, nil); err != nil {
		return nil, err
	}
	return removed, nil
}
