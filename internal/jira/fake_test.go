package jira

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeJira is a minimal in-memory Jira used by the link and transition
// tests. It serves the handful of endpoints the client touches and counts
// mutating requests so tests can assert dry-run behavior.
type fakeJira struct {
	t   *testing.T
	srv *httptest.Server

	linkTypes []map[string]string

	// per-ticket state
	summaries map[string]string
	statuses  map[string]string
	links     map[string][]map[string]any

	// transitions offered for every ticket, and the status a ticket lands
	// on when one is executed
	transitions []map[string]any
	landsOn     string

	postCount   int
	deleteCount int
	getCount    int

	lastLinkPayload map[string]any
	deletedLinkIDs  []string
}

func newFakeJira(t *testing.T) *fakeJira {
	f := &fakeJira{
		t: t,
		linkTypes: []map[string]string{
			{"id": "10000", "name": "Blocks", "outward": "blocks", "inward": "is blocked by"},
			{"id": "10001", "name": "Duplicate", "outward": "duplicates", "inward": "is duplicated by"},
			{"id": "10002", "name": "Relates", "outward": "relates to", "inward": "relates to"},
		},
		summaries: map[string]string{},
		statuses:  map[string]string{},
		links:     map[string][]map[string]any{},
		landsOn:   "Done",
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeJira) client() *Client {
	return newTestClient(f.srv)
}

func (f *fakeJira) addTicket(key, summary, status string) {
	f.summaries[key] = summary
	f.statuses[key] = status
}

func (f *fakeJira) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case r.Method == http.MethodGet && path == "/issueLinkType":
		f.getCount++
		f.writeJSON(w, map[string]any{"issueLinkTypes": f.linkTypes})

	case r.Method == http.MethodPost && path == "/issueLink":
		f.postCount++
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			f.t.Errorf("bad link payload: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.lastLinkPayload = payload
		f.recordLink(payload)
		w.WriteHeader(http.StatusCreated)

	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/issueLink/"):
		f.deleteCount++
		f.deletedLinkIDs = append(f.deletedLinkIDs, strings.TrimPrefix(path, "/issueLink/"))
		w.WriteHeader(http.StatusNoContent)

	case r.Method == http.MethodGet && strings.HasSuffix(path, "/transitions"):
		f.getCount++
		f.writeJSON(w, map[string]any{"transitions": f.transitions})

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/transitions"):
		f.postCount++
		key := strings.TrimSuffix(strings.TrimPrefix(path, "/issue/"), "/transitions")
		f.statuses[key] = f.landsOn
		w.WriteHeader(http.StatusNoContent)

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/issue/"):
		f.getCount++
		key := strings.TrimPrefix(path, "/issue/")
		summary, ok := f.summaries[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"errorMessages":["Issue does not exist or you do not have permission to see it."]}`)
			return
		}
		f.writeJSON(w, map[string]any{
			"key": key,
			"fields": map[string]any{
				"summary":    summary,
				"status":     map[string]string{"name": f.statuses[key]},
				"issuelinks": f.links[key],
			},
		})

	default:
		f.t.Errorf("unexpected request: %s %s", r.Method, path)
		w.WriteHeader(http.StatusNotFound)
	}
}

// recordLink mirrors what Jira does with a create payload: the ticket named
// in inwardIssue gains a link entry whose peer sits in outwardIssue, and
// vice versa.
func (f *fakeJira) recordLink(payload map[string]any) {
	typeField, _ := payload["type"].(map[string]any)
	typeName, _ := typeField["name"].(string)
	var linkType map[string]string
	for _, lt := range f.linkTypes {
		if lt["name"] == typeName {
			linkType = lt
			break
		}
	}
	if linkType == nil {
		f.t.Errorf("create used unknown link type %q", typeName)
		return
	}

	inwardField, _ := payload["inwardIssue"].(map[string]any)
	outwardField, _ := payload["outwardIssue"].(map[string]any)
	inwardKey, _ := inwardField["key"].(string)
	outwardKey, _ := outwardField["key"].(string)

	id := fmt.Sprintf("1%04d", len(f.links[inwardKey])+len(f.links[outwardKey])+1)

	f.links[inwardKey] = append(f.links[inwardKey], map[string]any{
		"id":   id,
		"type": linkType,
		"outwardIssue": map[string]any{
			"key": outwardKey,
			"fields": map[string]any{
				"summary": f.summaries[outwardKey],
				"status":  map[string]string{"name": f.statuses[outwardKey]},
			},
		},
	})
	f.links[outwardKey] = append(f.links[outwardKey], map[string]any{
		"id":   id,
		"type": linkType,
		"inwardIssue": map[string]any{
			"key": inwardKey,
			"fields": map[string]any{
				"summary": f.summaries[inwardKey],
				"status":  map[string]string{"name": f.statuses[inwardKey]},
			},
		},
	})
}

func (f *fakeJira) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		f.t.Errorf("encode response: %v", err)
	}
}
