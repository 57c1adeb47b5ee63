package jira

import (
	"net/http"

	"github.com/danielolaszy/tix/internal/logging"
	"github.com/danielolaszy/tix/pkg/models"
)

// GetTransitions fetches the transitions legal from the ticket's current
// status. The set is state-dependent, so it is re-fetched on every call and
// never cached.
func (c *Client) GetTransitions(key string) ([]models.Transition, error) {
	var payload struct {
		Transitions []transitionPayload `json:"transitions"`
	}
	if err := c.get("/issue/"+key+"/transitions", &payload); err != nil {
		return nil, err
	}

	transitions := make([]models.Transition, 0, len(payload.Transitions))
	for _, tr := range payload.Transitions {
		transitions = append(transitions, models.Transition{
			ID:   tr.ID,
			Name: tr.Name,
			To:   tr.To.Name,
		})
	}
	return transitions, nil
}

// TransitionRequest describes one workflow move.
type TransitionRequest struct {
	Key    string
	Status string
	DryRun bool
}

// TransitionResult reports the resolved transition and the statuses
// observed before and after. After is only set once the transition has been
// applied and the ticket re-fetched.
type TransitionResult struct {
	Key        string
	Summary    string
	Before     string
	After      string
	Transition models.Transition
	Applied    bool
}

// ExecuteTransition resolves the target status against the ticket's
// available transitions and executes it unless the request is a dry run.
// The ticket is re-fetched afterwards and the observed status reported:
// workflow post-functions may land the ticket somewhere other than the
// transition's nominal destination, and the server is the source of truth.
func (c *Client) ExecuteTransition(req TransitionRequest) (*TransitionResult, error) {
	ticket, err := c.GetTicket(req.Key)
	if err != nil {
		return nil, err
	}

	transitions, err := c.GetTransitions(req.Key)
	if err != nil {
		return nil, err
	}

	transition := matchTransition(transitions, req.Status)
	if transition == nil {
		return nil, &TransitionNotFoundError{Key: req.Key, Query: req.Status, Available: transitions}
	}
	logging.Debug("resolved transition",
		"query", req.Status,
		"name", transition.Name,
		"id", transition.ID,
		"to", transition.To)

	result := &TransitionResult{
		Key:        ticket.Key,
		Summary:    ticket.Summary,
		Before:     ticket.Status,
		Transition: *transition,
	}

	if req.DryRun {
		return result, nil
	}

	payload := map[string]any{
		"transition": map[string]string{"id": transition.ID},
	}
	if _, err := c.request(http.MethodPost, "/issue/"+req.Key+"/transitions", payload); err != nil {
		return nil, err
	}

	updated, err := c.GetTicket(req.Key)
	if err != nil {
		return nil, err
	}
	result.After = updated.Status
	result.Applied = true
	return result, nil
}
