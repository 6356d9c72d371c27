package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/matst80/slask-photos/pkg/catalog"
	"github.com/matst80/slask-photos/pkg/common"
	"github.com/matst80/slask-photos/pkg/prefs"
	"github.com/matst80/slask-photos/pkg/storage"
	"github.com/matst80/slask-photos/pkg/tracking"
	"github.com/matst80/slask-photos/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskphotos_searches_total",
		Help: "The total number of free text searches",
	})
	noToggles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskphotos_toggles_total",
		Help: "The total number of filter mutations",
	})
	noFacetViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskphotos_facets_total",
		Help: "The total number of facet listings",
	})
	noReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskphotos_reloads_total",
		Help: "The total number of catalog reloads",
	})
	pageDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slaskphotos_page_duration_seconds",
		Help:    "Time to serve a photo page",
		Buckets: prometheus.DefBuckets,
	})
)

type WebServer struct {
	Catalog  *catalog.Catalog
	Sessions *SessionStore
	Storage  *storage.DiskStorage
	Prefs    prefs.Store
	Tracking tracking.Tracking
	Auth     *TokenAuth
}

type photoPage struct {
	Photos       []*types.Photo `json:"photos"`
	Page         int            `json:"page"`
	PageSize     int            `json:"pageSize"`
	TotalHits    int            `json:"totalHits"`
	FilterActive bool           `json:"filterActive"`
	Sort         string         `json:"sort"`
	Ascending    bool           `json:"ascending,omitempty"`
	Duration     string         `json:"duration,omitempty"`
}

func (ws *WebServer) GetPhotos(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	s := time.Now()
	pr, err := types.GetPageFromRequest(r)
	if err != nil {
		return err
	}
	session := ws.Sessions.Get(sessionId)
	photos, total := session.Page(pr.Page, pr.PageSize)
	sort := session.SortSelection()
	pageDuration.Observe(time.Since(s).Seconds())

	w.WriteHeader(http.StatusOK)
	return enc.Encode(photoPage{
		Photos:       photos,
		Page:         pr.Page,
		PageSize:     pr.PageSize,
		TotalHits:    total,
		FilterActive: session.IsFilterActive(),
		Sort:         string(sort.Key),
		Ascending:    sort.Ascending,
		Duration:     fmt.Sprintf("%v", time.Since(s)),
	})
}

func (ws *WebServer) GetFacets(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	noFacetViews.Inc()
	session := ws.Sessions.Get(sessionId)
	ret := make([]types.FacetResult, 0)
	for _, f := range session.FacetOptions() {
		if f.HasValues() || len(f.Selected) > 0 {
			ret = append(ret, f)
		}
	}
	w.WriteHeader(http.StatusOK)
	return enc.Encode(ret)
}

func (ws *WebServer) GetChips(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	w.WriteHeader(http.StatusOK)
	return enc.Encode(ws.Sessions.Get(sessionId).ChipGroups())
}

func (ws *WebServer) GetQuickStats(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	w.WriteHeader(http.StatusOK)
	return enc.Encode(ws.Catalog.QuickStats())
}

func (ws *WebServer) GetFilterState(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	session := ws.Sessions.Get(sessionId)
	w.WriteHeader(http.StatusOK)
	return enc.Encode(session.Filters())
}

func (ws *WebServer) trackFilter(sessionId string, session *catalog.Session) {
	if ws.Tracking == nil {
		return
	}
	go ws.Tracking.TrackFilter(sessionId, session.Filters(), len(session.FilteredPhotos()))
}

// ToggleValue flips one value of a set dimension and answers with the
// updated facets so the UI repaints from one round trip.
func (ws *WebServer) ToggleValue(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	tr, err := types.GetToggleFromRequest(r)
	if err != nil {
		return err
	}
	noToggles.Inc()
	session := ws.Sessions.Get(sessionId)
	session.ToggleValue(tr.Dimension, tr.Value)
	ws.trackFilter(sessionId, session)
	return ws.GetFacets(w, r, sessionId, enc)
}

func (ws *WebServer) SetMode(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	tr, err := types.GetToggleFromRequest(r)
	if err != nil {
		return err
	}
	noToggles.Inc()
	session := ws.Sessions.Get(sessionId)
	session.SetMode(tr.Dimension, tr.Mode)
	return ws.GetFacets(w, r, sessionId, enc)
}

func (ws *WebServer) SetState(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	tr, err := types.GetToggleFromRequest(r)
	if err != nil {
		return err
	}
	noToggles.Inc()
	session := ws.Sessions.Get(sessionId)
	session.SetState(tr.Dimension, tr.State)
	ws.trackFilter(sessionId, session)
	return ws.GetFacets(w, r, sessionId, enc)
}

// SetSearchText expects the caller to debounce typing; every call pays
// for a full pipeline run.
func (ws *WebServer) SetSearchText(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	tr, err := types.GetToggleFromRequest(r)
	if err != nil {
		return err
	}
	noSearches.Inc()
	session := ws.Sessions.Get(sessionId)
	session.SetSearchText(tr.Query)
	if ws.Tracking != nil {
		go ws.Tracking.TrackSearch(sessionId, tr.Query, len(session.FilteredPhotos()))
	}
	return ws.GetFacets(w, r, sessionId, enc)
}

func (ws *WebServer) ClearFilters(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	noToggles.Inc()
	ws.Sessions.Get(sessionId).ClearFilters()
	return ws.GetFacets(w, r, sessionId, enc)
}

func (ws *WebServer) RemoveChip(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	tr, err := types.GetToggleFromRequest(r)
	if err != nil {
		return err
	}
	noToggles.Inc()
	session := ws.Sessions.Get(sessionId)
	session.RemoveChip(tr.Chip)
	ws.trackFilter(sessionId, session)
	return ws.GetChips(w, r, sessionId, enc)
}

func (ws *WebServer) SelectSort(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	tr, err := types.GetToggleFromRequest(r)
	if err != nil {
		return err
	}
	session := ws.Sessions.Get(sessionId)
	session.SelectSort(tr.Sort)
	sort := session.SortSelection()
	w.WriteHeader(http.StatusOK)
	return enc.Encode(sort)
}

// ReloadCatalog reloads from disk, admin only. The engine never mutates
// photos in place; collaborators write and then trigger this.
func (ws *WebServer) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	photos, err := ws.Storage.LoadCatalog()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	noReloads.Inc()
	ws.Catalog.SetPhotos(photos)
	ws.Sessions.Refresh()
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"photos":%d}`, len(photos))
}

func (ws *WebServer) SaveCatalog(w http.ResponseWriter, r *http.Request) {
	if err := ws.Storage.SaveCatalog(ws.Catalog.Photos()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (ws *WebServer) UpdateDefaultFilters(w http.ResponseWriter, r *http.Request) {
	if ws.Prefs == nil {
		http.Error(w, "no preference store", http.StatusNotImplemented)
		return
	}
	filters := types.NewFilterState()
	if err := json.NewDecoder(r.Body).Decode(filters); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := ws.Prefs.SetDefaultFilters(filters); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (ws *WebServer) MakeRoutes(srv *http.ServeMux) {
	srv.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv.HandleFunc("/api/photos", common.JsonHandler(ws.Tracking, ws.GetPhotos))
	srv.HandleFunc("/api/facets", common.JsonHandler(ws.Tracking, ws.GetFacets))
	srv.HandleFunc("/api/chips", common.JsonHandler(ws.Tracking, ws.GetChips))
	srv.HandleFunc("/api/stats", common.JsonHandler(ws.Tracking, ws.GetQuickStats))
	srv.HandleFunc("/api/filters", common.JsonHandler(ws.Tracking, ws.GetFilterState))
	srv.HandleFunc("/api/toggle", common.JsonHandler(ws.Tracking, ws.ToggleValue))
	srv.HandleFunc("/api/mode", common.JsonHandler(ws.Tracking, ws.SetMode))
	srv.HandleFunc("/api/state", common.JsonHandler(ws.Tracking, ws.SetState))
	srv.HandleFunc("/api/search", common.JsonHandler(ws.Tracking, ws.SetSearchText))
	srv.HandleFunc("/api/clear", common.JsonHandler(ws.Tracking, ws.ClearFilters))
	srv.HandleFunc("/api/chips/remove", common.JsonHandler(ws.Tracking, ws.RemoveChip))
	srv.HandleFunc("/api/sort", common.JsonHandler(ws.Tracking, ws.SelectSort))
	if ws.Auth != nil {
		srv.HandleFunc("POST /admin/reload", ws.Auth.Middleware(ws.ReloadCatalog))
		srv.HandleFunc("POST /admin/save", ws.Auth.Middleware(ws.SaveCatalog))
		srv.HandleFunc("POST /admin/prefs", ws.Auth.Middleware(ws.UpdateDefaultFilters))
	}
}
