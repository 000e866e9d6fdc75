package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/Veraticus/gastx/internal/classification"
	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/model"
)

// InfoResponse is returned by GET /.
type InfoResponse struct {
	App         string `json:"app"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    int64  `json:"uptime"`
}

// CategoryInfo describes one category and how many patterns each tier holds.
type CategoryInfo struct {
	PatternCounts map[model.Tier]int `json:"pattern_counts"`
	Name          model.Category     `json:"name"`
}

// CategoriesResponse is returned by GET /api/v1/categories.
type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
	Count      int            `json:"count"`
}

// PatternsResponse lists the patterns of one category.
type PatternsResponse struct {
	Patterns map[model.Tier][]string `json:"patterns"`
	Category model.Category          `json:"category"`
}

// AddPatternRequest is the body of POST /api/v1/categories/{name}/patterns.
type AddPatternRequest struct {
	Pattern string `json:"pattern"`
	Tier    string `json:"tier,omitempty"`
}

// AddPatternResponse reports whether the pattern was new.
type AddPatternResponse struct {
	Category model.Category `json:"category"`
	Pattern  string         `json:"pattern"`
	Tier     model.Tier     `json:"tier"`
	Added    bool           `json:"added"`
}

// ClassifyRequest is the body of POST /api/v1/classify and /suggest.
type ClassifyRequest struct {
	Text string `json:"text"`
}

// BatchRequest is the body of POST /api/v1/classify/batch.
type BatchRequest struct {
	Texts []string `json:"texts"`
}

// BatchResponse holds one result per input text, in input order.
type BatchResponse struct {
	Results []model.CategoryMatch `json:"results"`
	Count   int                   `json:"count"`
}

// SuggestResponse holds ranked suggestions.
type SuggestResponse struct {
	Suggestions []model.CategorySuggestion `json:"suggestions"`
}

// StatsRequest is the body of POST /api/v1/stats.
type StatsRequest struct {
	Transactions []StatsRecord `json:"transactions"`
}

// StatsRecord is a transaction as sent by the web client.
type StatsRecord struct {
	Title string `json:"title"`
}

// Text implements classification.TextRecord.
func (r StatsRecord) Text() string {
	return r.Title
}

// HandleRoot returns application information.
func (s *Server) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	SendJSON(w, http.StatusOK, InfoResponse{
		App:         "GastX",
		Version:     s.version,
		Description: "Analisador Inteligente de Gastos Pessoais",
	})
}

// HandleHealth returns a health check.
func (s *Server) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	now := time.Now()
	SendJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: now.Format(time.RFC3339),
		Uptime:    int64(now.Sub(s.startTime).Seconds()),
	})
}

// HandleListCategories lists the catalogue followed by the sentinel.
func (s *Server) HandleListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := s.engine.Categories()
	resp := CategoriesResponse{
		Categories: make([]CategoryInfo, 0, len(categories)),
		Count:      len(categories),
	}
	for _, c := range categories {
		patterns := s.engine.Patterns(c)
		counts := make(map[model.Tier]int, len(model.Tiers))
		for _, tier := range model.Tiers {
			counts[tier] = len(patterns[tier])
		}
		resp.Categories = append(resp.Categories, CategoryInfo{Name: c, PatternCounts: counts})
	}
	SendJSON(w, http.StatusOK, resp)
}

// HandleGetPatterns lists the patterns of one category.
func (s *Server) HandleGetPatterns(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		sendErr(w, r, err)
		return
	}

	patterns := s.engine.Patterns(category)
	resp := PatternsResponse{
		Category: category,
		Patterns: make(map[model.Tier][]string, len(model.Tiers)),
	}
	for _, tier := range model.Tiers {
		list := patterns[tier]
		if list == nil {
			list = []string{}
		}
		resp.Patterns[tier] = list
	}
	SendJSON(w, http.StatusOK, resp)
}

// HandleAddPattern registers a pattern at runtime. A new pattern answers 201,
// a duplicate 200.
func (s *Server) HandleAddPattern(w http.ResponseWriter, r *http.Request) {
	category, err := categoryVar(r)
	if err != nil {
		sendErr(w, r, err)
		return
	}
	if !category.InCatalogue() {
		SendError(w, http.StatusBadRequest, ErrCodeInvalidRequest,
			fmt.Sprintf("category %q cannot carry patterns", category))
		return
	}

	var req AddPatternRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tierName := req.Tier
	if strings.TrimSpace(tierName) == "" {
		tierName = string(model.TierMedium)
	}
	tier, err := model.ParseTier(tierName)
	if err != nil {
		sendErr(w, r, err)
		return
	}

	added, err := s.engine.AddPattern(category, req.Pattern, tier)
	if err != nil {
		sendErr(w, r, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	SendJSON(w, status, AddPatternResponse{
		Category: category,
		Pattern:  common.NormalizePattern(req.Pattern),
		Tier:     tier,
		Added:    added,
	})
}

// HandleClassify classifies one description.
func (s *Server) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	SendJSON(w, http.StatusOK, s.engine.Classify(req.Text))
}

// HandleClassifyBatch classifies many descriptions, preserving order.
func (s *Server) HandleClassifyBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	results, err := s.engine.ClassifyBatch(r.Context(), req.Texts)
	if err != nil {
		sendErr(w, r, err)
		return
	}
	SendJSON(w, http.StatusOK, BatchResponse{Results: results, Count: len(results)})
}

// HandleSuggest ranks plausible categories for one description.
func (s *Server) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	SendJSON(w, http.StatusOK, SuggestResponse{Suggestions: s.engine.Suggest(req.Text)})
}

// HandleStats summarizes classification coverage over a list of transactions.
func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	SendJSON(w, http.StatusOK, classification.Aggregate(s.engine.Classifier, req.Transactions))
}

func categoryVar(r *http.Request) (model.Category, error) {
	raw := mux.Vars(r)["name"]
	name, err := url.PathUnescape(raw)
	if err != nil {
		name = raw
	}
	category, ok := model.ParseCategory(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownCategory, name)
	}
	return category, nil
}
