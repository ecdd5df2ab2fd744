package httptransport

import (
	"fmt"
	"time"

	"archivum/internal/catalog"
	"archivum/internal/compliance"
	"archivum/internal/hotspot"
	"archivum/internal/record"
	dErrors "archivum/pkg/domain-errors"
)

// registerRecordRequest is the payload for registering a record.
type registerRecordRequest struct {
	Title             string   `json:"title"`
	ProcessCategory   string   `json:"process_category"`
	DecisionType      string   `json:"decision_type"`
	Body              string   `json:"body"`
	CreatedAt         string   `json:"created_at"`
	DisclosureFlagged bool     `json:"disclosure_flagged"`
	PrivacyLevel      string   `json:"privacy_level"`
	Signals           *signals `json:"signals,omitempty"`
}

// signals mirrors compliance.Signals for the wire.
type signals struct {
	IsFormalDecision bool     `json:"is_formal_decision"`
	AlreadyPublic    bool     `json:"already_public"`
	DisclosureTerms  []string `json:"disclosure_terms,omitempty"`
	PrivacyTerms     []string `json:"privacy_terms,omitempty"`
}

func (s *signals) toDomain() compliance.Signals {
	if s == nil {
		return compliance.Signals{}
	}
	return compliance.Signals{
		IsFormalDecision: s.IsFormalDecision,
		AlreadyPublic:    s.AlreadyPublic,
		DisclosureTerms:  s.DisclosureTerms,
		PrivacyTerms:     s.PrivacyTerms,
	}
}

// classifyRequest carries the text signals for a classification call.
type classifyRequest struct {
	Signals *signals `json:"signals,omitempty"`
}

// batchClassifyRequest carries multiple classification items.
type batchClassifyRequest struct {
	Items []batchItem `json:"items"`
}

type batchItem struct {
	RecordID string   `json:"record_id"`
	Signals  *signals `json:"signals,omitempty"`
}

// registerHotspotRequest is the payload for declaring a hotspot.
type registerHotspotRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Start       string   `json:"start"`
	End         *string  `json:"end,omitempty"`
	Categories  []string `json:"categories"`
	PublishedAt *string  `json:"published_at,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// closeHotspotRequest sets the end date of a hotspot window.
type closeHotspotRequest struct {
	End string `json:"end"`
}

func (req *registerRecordRequest) toDomain() (record.Record, error) {
	createdAt, err := parseDate(req.CreatedAt)
	if err != nil {
		return record.Record{}, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid created_at: %v", err))
	}

	rec := record.Record{
		Title:             req.Title,
		Category:          catalog.ProcessCategory(req.ProcessCategory),
		DecisionType:      catalog.DecisionType(req.DecisionType),
		Body:              catalog.BodyKind(req.Body),
		CreatedAt:         createdAt,
		DisclosureFlagged: req.DisclosureFlagged,
		PrivacyLevel:      compliance.PrivacyLevel(req.PrivacyLevel),
	}
	if rec.Body == "" {
		rec.Body = catalog.BodyProvincialOrgans
	}
	if rec.PrivacyLevel == "" {
		rec.PrivacyLevel = compliance.PrivacyLevelNone
	}
	return rec, nil
}

func (req *registerHotspotRequest) toDomain() (hotspot.Hotspot, error) {
	start, err := parseDate(req.Start)
	if err != nil {
		return hotspot.Hotspot{}, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid start: %v", err))
	}

	h := hotspot.Hotspot{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Start:       start,
		URL:         req.URL,
	}
	if req.End != nil {
		end, err := parseDate(*req.End)
		if err != nil {
			return hotspot.Hotspot{}, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid end: %v", err))
		}
		h.End = &end
	}
	if req.PublishedAt != nil {
		published, err := parseDate(*req.PublishedAt)
		if err != nil {
			return hotspot.Hotspot{}, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid published_at: %v", err))
		}
		h.PublishedAt = &published
	}
	for _, c := range req.Categories {
		cat := catalog.ProcessCategory(c)
		if !cat.Valid() {
			return hotspot.Hotspot{}, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown process category %q", c))
		}
		h.Categories = append(h.Categories, cat)
	}
	return h, nil
}

// parseDate accepts RFC 3339 timestamps or plain dates; plain dates become
// UTC midnight.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD, got %q", value)
	}
	return t.UTC(), nil
}
