package service

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"warotator/internal/types"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
)

const (
	qrDefaultSize = 256
	qrMinSize     = 64
	qrMaxSize     = 1024
)

var errorPageText = map[string]string{
	"group-not-found": "This link does not exist or is no longer active.",
	"no-numbers":      "Nobody is available to take your chat right now. Please try again later.",
	"internal-error":  "Something went wrong. Please try again.",
}

func (s *Server) handlerRedirect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	target, err := s.dispatcher.Resolve(r.Context(), slug, clickMetadata(r))
	if err != nil {
		http.Redirect(w, r, s.errorPage(Reason(err)), http.StatusFound)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) handlerQR(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, err := s.dispatcher.LookupGroup(r.Context(), slug); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			writeError(w, http.StatusNotFound, "group not found")
			return
		}
		slog.Error("qr group lookup failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	size := qrDefaultSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < qrMinSize || n > qrMaxSize {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("size must be between %d and %d", qrMinSize, qrMaxSize))
			return
		}
		size = n
	}

	png, err := qrcode.Encode(s.publicLink(r, slug), qrcode.Medium, size)
	if err != nil {
		slog.Error("qr encode failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(png)
}

func (s *Server) handlerErrorPage(w http.ResponseWriter, r *http.Request) {
	reason := r.URL.Query().Get("reason")
	text, ok := errorPageText[reason]
	if !ok {
		reason, text = "internal-error", errorPageText["internal-error"]
	}
	status := http.StatusInternalServerError
	switch reason {
	case "group-not-found":
		status = http.StatusNotFound
	case "no-numbers":
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, "<!doctype html><html><head><meta charset=\"utf-8\"><title>%s</title></head><body><p>%s</p></body></html>",
		html.EscapeString(reason), html.EscapeString(text))
}

func (s *Server) errorPage(reason string) string {
	base := s.cfg.ErrorPageURL
	if base == "" {
		base = "/error"
	}
	u, err := url.Parse(base)
	if err != nil {
		return "/error?reason=" + url.QueryEscape(reason)
	}
	q := u.Query()
	q.Set("reason", reason)
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *Server) publicLink(r *http.Request, slug string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		} else if s.cfg.TrustProxy && r.Header.Get("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/l/" + url.PathEscape(slug)
}

// clickMetadata collects the request attributes stored with a click.
// RemoteAddr already holds the client address when RealIP is mounted.
func clickMetadata(r *http.Request) types.ClickMetadata {
	q := r.URL.Query()
	return types.ClickMetadata{
		IPAddress:   clientIP(r.RemoteAddr),
		UserAgent:   r.UserAgent(),
		Referrer:    r.Referer(),
		UTMSource:   strings.TrimSpace(q.Get("utm_source")),
		UTMMedium:   strings.TrimSpace(q.Get("utm_medium")),
		UTMCampaign: strings.TrimSpace(q.Get("utm_campaign")),
	}
}

func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
