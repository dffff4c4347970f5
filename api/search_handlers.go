// Copyright 2025 Prospekt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prospekt/leadrank/core"
)

// LeadSearchRequest is the body of POST /api/leads/search.
type LeadSearchRequest struct {
	Product  string   `json:"product" binding:"required"`
	Industry string   `json:"industry" binding:"required"`
	Region   string   `json:"region"`
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
	MinScore float64  `json:"min_score"`
}

// LeadResponse is the externally visible lead shape.
type LeadResponse struct {
	CompanyName    string             `json:"company_name"`
	Region         string             `json:"region,omitempty"`
	Industry       string             `json:"industry,omitempty"`
	Email          string             `json:"email,omitempty"`
	Phone          string             `json:"phone,omitempty"`
	Website        string             `json:"website,omitempty"`
	ContactPerson  string             `json:"contact_person,omitempty"`
	FinalScore     int                `json:"final_score"`
	Priority       string             `json:"priority"`
	ScoreBreakdown map[string]float64 `json:"score_breakdown"`
	Fields         map[string]string  `json:"fields,omitempty"`
}

// LeadSearchResponse is the body returned by POST /api/leads/search.
type LeadSearchResponse struct {
	Leads          []LeadResponse `json:"leads"`
	TotalMatches   int            `json:"total_matches"`
	QualifiedCount int            `json:"qualified_count"`
	Warning        string         `json:"warning,omitempty"`
}

// SearchLeadsHandler runs the lead discovery pipeline.
func (a *API) SearchLeadsHandler(c *gin.Context) {
	var req LeadSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(c, err)
		return
	}

	criteria := &core.SearchCriteria{
		Product:  req.Product,
		Industry: req.Industry,
		Region:   req.Region,
		Keywords: req.Keywords,
		Limit:    req.Limit,
		MinScore: req.MinScore,
	}

	result, err := a.service.FindLeads(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCriteria) {
			respondValidationFailed(c, err)
			return
		}
		a.logger.Error("lead search failed", "error", err, "request_id", RequestID(c))
		respondSearchFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, toLeadSearchResponse(result))
}

// SimilarSearchRequest is the body of POST /api/search/similar.
type SimilarSearchRequest struct {
	Query        string `json:"query" binding:"required"`
	SourceFilter string `json:"source_filter"`
	TopK         int    `json:"top_k"`
}

// SimilarMatchResponse is one similarity match.
type SimilarMatchResponse struct {
	RecordID         uint64            `json:"record_id"`
	SourceDocumentID string            `json:"source_document_id,omitempty"`
	Content          string            `json:"content"`
	Fields           map[string]string `json:"fields,omitempty"`
	Score            float64           `json:"score"`
}

// SearchSimilarHandler runs a raw similarity search.
func (a *API) SearchSimilarHandler(c *gin.Context) {
	var req SimilarSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(c, err)
		return
	}

	matches, err := a.service.SearchSimilar(c.Request.Context(), req.Query, req.SourceFilter, req.TopK)
	if err != nil {
		a.logger.Error("similarity search failed", "error", err, "request_id", RequestID(c))
		respondSearchFailed(c, err)
		return
	}

	response := make([]SimilarMatchResponse, len(matches))
	for i, match := range matches {
		response[i] = SimilarMatchResponse{
			RecordID:         uint64(match.Record.Id),
			SourceDocumentID: match.Record.SourceDocumentId,
			Content:          match.Record.Content,
			Fields:           match.Record.Fields,
			Score:            match.Score,
		}
	}
	c.JSON(http.StatusOK, gin.H{"matches": response})
}

func toLeadSearchResponse(result *core.LeadSearchResult) LeadSearchResponse {
	response := LeadSearchResponse{
		Leads:          make([]LeadResponse, len(result.Leads)),
		TotalMatches:   result.TotalMatches,
		QualifiedCount: result.QualifiedCount,
		Warning:        result.Warning,
	}
	for i, lead := range result.Leads {
		response.Leads[i] = LeadResponse{
			CompanyName:    lead.CompanyName,
			Region:         lead.Region,
			Industry:       lead.Industry,
			Email:          lead.Email,
			Phone:          lead.Phone,
			Website:        lead.Website,
			ContactPerson:  lead.ContactPerson,
			FinalScore:     lead.FinalScore,
			Priority:       lead.Priority,
			ScoreBreakdown: lead.ScoreBreakdown,
			Fields:         lead.Fields,
		}
	}
	return response
}
