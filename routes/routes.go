package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	hmacext "github.com/alexellis/hmac/v2"
	"github.com/rs/cors"

	"github.com/slime-this/bangerd/config"
	"github.com/slime-this/bangerd/db"
	"github.com/slime-this/bangerd/events"
	"github.com/slime-this/bangerd/gallery"
	"github.com/slime-this/bangerd/models"
	"github.com/slime-this/bangerd/session"
	"github.com/slime-this/bangerd/shared"
)

type navigateRequest struct {
	Direction string `json:"direction,omitempty"`
	Page      int    `json:"page,omitempty"`
}

type selectRequest struct {
	URL string `json:"url"`
}

type preferencesPayload struct {
	Theme      string `json:"theme,omitempty"`
	TypeFilter string `json:"type_filter,omitempty"`
}

func renderJSONMessage(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	res := map[string]string{"message": message}
	json.NewEncoder(w).Encode(res)
}

func renderJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func Register(mux *http.ServeMux, sess *session.Session, store db.Store, cfg config.Config, refresh func(context.Context) error) http.Handler {

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "Welcome to Bangerd, the banger generation API.\nYou can find the source code on <a href=\"https://github.com/slime-this/bangerd\">Github</a>\n")
	})

	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		renderJSONMessage(w, "This is the base of Bangerd's API")
	})

	mux.HandleFunc("/api/v1", func(w http.ResponseWriter, r *http.Request) {
		renderJSONMessage(w, "This is the v1 endpoint of the API")
	})

	mux.HandleFunc("/api/v1/banger", func(w http.ResponseWriter, r *http.Request) {
		payload := sess.Generate(r.URL.Query().Get("type"))
		renderJSON(w, payload)
	})

	mux.HandleFunc("/api/v1/gallery", func(w http.ResponseWriter, r *http.Request) {
		renderJSON(w, sess.Gallery())
	})

	mux.HandleFunc("/api/v1/gallery/navigate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			renderJSONMessage(w, "failed to parse navigation request")
			return
		}
		var snap gallery.Snapshot
		switch {
		case req.Direction != "":
			snap = sess.Navigate(gallery.Direction(req.Direction))
		case req.Page > 0:
			snap = sess.GoToPage(req.Page)
		default:
			snap = sess.Gallery()
		}
		renderJSON(w, snap)
	})

	mux.HandleFunc("/api/v1/gallery/select", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			w.WriteHeader(http.StatusBadRequest)
			renderJSONMessage(w, "a url is required")
			return
		}
		payload, ok := sess.SelectImage(req.URL)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			renderJSONMessage(w, "that image is not on the current page")
			return
		}
		events.PublishNotice(models.NoticeSuccess, "Image selected!")
		renderJSON(w, payload)
	})

	mux.HandleFunc("/api/v1/gallery/back", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		renderJSON(w, sess.GalleryBack())
	})

	mux.HandleFunc("/api/v1/gallery/item/next", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		renderJSON(w, sess.NextItem())
	})

	mux.HandleFunc("/api/v1/gallery/item/previous", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		renderJSON(w, sess.PreviousItem())
	})

	mux.HandleFunc("/api/v1/export", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		renderJSON(w, sess.ExportCurrent(r.Context()))
	})

	mux.HandleFunc("/api/v1/history", func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
			limit = l
		}
		records, err := store.GetRecentExports(limit)
		if err != nil {
			slog.Error("Failed to load export history", slog.String("stack", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			renderJSONMessage(w, "failed to load export history")
			return
		}
		renderJSON(w, records)
	})

	mux.HandleFunc("/api/v1/preferences", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			renderJSON(w, preferencesPayload{
				Theme:      preference(store, shared.PREF_THEME, shared.DEFAULT_THEME),
				TypeFilter: preference(store, shared.PREF_TYPE_FILTER, shared.FILTER_ALL),
			})
		case http.MethodPut:
			var prefs preferencesPayload
			if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				renderJSONMessage(w, "failed to parse preferences")
				return
			}
			if prefs.Theme != "" {
				if err := store.UpsertPreference(shared.PREF_THEME, prefs.Theme); err != nil {
					slog.Error("Failed to save theme", slog.String("stack", err.Error()))
				}
			}
			if prefs.TypeFilter != "" {
				if err := store.UpsertPreference(shared.PREF_TYPE_FILTER, prefs.TypeFilter); err != nil {
					slog.Error("Failed to save type filter", slog.String("stack", err.Error()))
				}
			}
			renderJSONMessage(w, "preferences saved")
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/v1/catalog/refresh", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		signature := r.Header.Get("X-Bangerd-Signature")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := hmacext.Validate(body, fmt.Sprintf("sha256=%s", signature), cfg.Bangerd.WebhookSecret); err != nil {
			slog.With(slog.Any("error", err)).Error("Failed signature validation")
			w.WriteHeader(http.StatusUnauthorized)
			renderJSONMessage(w, "signature failed validation")
			return
		}
		if err := refresh(r.Context()); err != nil {
			slog.Error("Failed to refresh catalog", slog.String("stack", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			renderJSONMessage(w, "catalog refresh failed")
			return
		}
		renderJSONMessage(w, "catalog refreshed")
	})

	mux.HandleFunc("/downloads/", func(w http.ResponseWriter, r *http.Request) {
		filename := strings.ReplaceAll(r.URL.Path, "/downloads/", "")
		if filename == "" || filename != filepath.Base(filename) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		path := filepath.Join(cfg.Bangerd.DownloadsDir, filename)
		if _, err := os.Stat(path); err != nil {
			w.WriteHeader(http.StatusGone)
			return
		}
		http.ServeFile(w, r, path)
	})

	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		events.Server.ServeHTTP(w, r)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"https://slimethis.net", "http://localhost:1313", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "PUT"},
		AllowedHeaders: []string{"Origin, Content-Type, Accept"},
	})

	handler := c.Handler(mux)

	return handler
}

func preference(store db.Store, id, fallback string) string {
	value, err := store.GetPreference(id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("Failed to load preference",
				slog.String("id", id),
				slog.String("stack", err.Error()),
			)
		}
		return fallback
	}
	return value
}
