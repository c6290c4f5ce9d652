package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"warotator/internal/config"
	"warotator/internal/database"
	"warotator/internal/service/mocks"
	"warotator/internal/types"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "s3cret"

type serverDeps struct {
	groups   *mocks.MockGroupStore
	selector *mocks.MockNumberSelector
	recorder *mocks.MockClickRecorder
	stats    *mocks.MockStatsStore
	admin    *mocks.MockAdminStore
	numbers  *mocks.MockNumberStore
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, cfg config.ServerConfig, health ...Pinger) (http.Handler, serverDeps) {
	ctrl := gomock.NewController(t)
	deps := serverDeps{
		groups:   mocks.NewMockGroupStore(ctrl),
		selector: mocks.NewMockNumberSelector(ctrl),
		recorder: mocks.NewMockClickRecorder(ctrl),
		stats:    mocks.NewMockStatsStore(ctrl),
		admin:    mocks.NewMockAdminStore(ctrl),
		numbers:  mocks.NewMockNumberStore(ctrl),
	}
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	d := NewDispatcher(deps.groups, deps.selector, deps.recorder, metrics)
	a := NewAdmin(deps.admin, NewSelector(deps.numbers, metrics), nil)
	srv := NewServer(cfg, d, NewStats(deps.stats), a, reg, health...)
	return srv.Routes(), deps
}

func defaultServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:           "8080",
		ErrorPageURL:   "/error",
		AdminToken:     testToken,
		RequestTimeout: 5 * time.Second,
	}
}

func TestServer_Redirect(t *testing.T) {
	h, deps := newTestServer(t, defaultServerConfig())
	g := testGroup()
	number := types.WhatsAppNumber{ID: uuid.New(), Phone: "5511999990001"}

	deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(g, nil)
	deps.selector.EXPECT().SelectNext(gomock.Any(), g.ID).Return(number, nil)
	deps.recorder.EXPECT().Record(gomock.Any(), g.ID, number.ID, types.ClickMetadata{
		IPAddress:   "198.51.100.4",
		UserAgent:   "test-agent",
		Referrer:    "https://instagram.com/",
		UTMSource:   "ig",
		UTMMedium:   "social",
		UTMCampaign: "launch",
	}).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/l/promo?utm_source=ig&utm_medium=social&utm_campaign=launch", nil)
	req.RemoteAddr = "198.51.100.4:51234"
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "https://instagram.com/")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://wa.me/5511999990001?text=Hi%2C%20I%20want%20info", rec.Header().Get("Location"))
}

func TestServer_RedirectTrustsProxyHeaders(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.TrustProxy = true
	h, deps := newTestServer(t, cfg)
	g := testGroup()
	number := types.WhatsAppNumber{ID: uuid.New(), Phone: "5511999990001"}

	deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(g, nil)
	deps.selector.EXPECT().SelectNext(gomock.Any(), g.ID).Return(number, nil)
	deps.recorder.EXPECT().Record(gomock.Any(), g.ID, number.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, meta types.ClickMetadata) error {
			assert.Equal(t, "203.0.113.9", meta.IPAddress)
			return nil
		})

	req := httptest.NewRequest(http.MethodGet, "/l/promo", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
}

func TestServer_RedirectErrors(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(deps serverDeps, g *types.Group)
		reason string
	}{
		{
			name: "unknown slug",
			setup: func(deps serverDeps, _ *types.Group) {
				deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(nil, database.ErrNotFound)
			},
			reason: "group-not-found",
		},
		{
			name: "no numbers",
			setup: func(deps serverDeps, g *types.Group) {
				deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(g, nil)
				deps.selector.EXPECT().SelectNext(gomock.Any(), g.ID).Return(types.WhatsAppNumber{}, ErrNoActiveNumbers)
			},
			reason: "no-numbers",
		},
		{
			name: "storage failure",
			setup: func(deps serverDeps, _ *types.Group) {
				deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(nil, errors.New("db down"))
			},
			reason: "internal-error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestServer(t, defaultServerConfig())
			tt.setup(deps, testGroup())

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/l/promo", nil))

			require.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/error?reason="+tt.reason, rec.Header().Get("Location"))
		})
	}
}

func TestServer_ExternalErrorPageKeepsQuery(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.ErrorPageURL = "https://example.com/oops?lang=pt"
	h, deps := newTestServer(t, cfg)
	deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(nil, database.ErrNotFound)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/l/promo", nil))

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "example.com", loc.Host)
	assert.Equal(t, "pt", loc.Query().Get("lang"))
	assert.Equal(t, "group-not-found", loc.Query().Get("reason"))
}

func TestServer_ErrorPage(t *testing.T) {
	h, _ := newTestServer(t, defaultServerConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/error?reason=no-numbers", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nobody is available")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/error?reason=%3Cscript%3E", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>")
}

func TestServer_QR(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.PublicBaseURL = "https://go.example.com"
	h, deps := newTestServer(t, cfg)
	deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(testGroup(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/l/promo/qr?size=128", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestServer_QRBadSize(t *testing.T) {
	h, deps := newTestServer(t, defaultServerConfig())
	deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(testGroup(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/l/promo/qr?size=5", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_StatsDaily(t *testing.T) {
	h, deps := newTestServer(t, defaultServerConfig())
	g1, g2 := uuid.New(), uuid.New()
	deps.stats.EXPECT().DailyCounts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f types.StatsFilter) ([]types.DailyCount, error) {
			assert.Equal(t, []uuid.UUID{g1, g2}, f.GroupIDs)
			assert.Equal(t, "2024-06-01", f.From.Format(types.DateLayout))
			assert.Equal(t, "2024-06-02", f.To.Format(types.DateLayout))
			return []types.DailyCount{{Date: "2024-06-02", Count: 4}}, nil
		})

	target := "/api/stats/daily?date_from=2024-06-01&date_to=2024-06-02&group_id=" + g1.String() + "," + g2.String()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []types.DailyCount `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []types.DailyCount{{Date: "2024-06-01", Count: 0}, {Date: "2024-06-02", Count: 4}}, body.Items)
}

func TestServer_StatsEmptyListIsArray(t *testing.T) {
	h, deps := newTestServer(t, defaultServerConfig())
	deps.stats.EXPECT().DimensionCounts(gomock.Any(), types.DimensionBrowser, gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/browsers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestServer_StatsBadParams(t *testing.T) {
	h, _ := newTestServer(t, defaultServerConfig())
	for _, q := range []string{
		"date_from=06/01/2024",
		"date_from=2024-06-05&date_to=2024-06-01",
		"group_id=not-a-uuid",
		"limit=0",
		"date_from=0001-01-01&date_to=9999-12-31",
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/top-groups?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestServer_StatsSpanLimit(t *testing.T) {
	h, deps := newTestServer(t, defaultServerConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/daily?date_from=2000-01-01&date_to=2020-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "exceeds")

	deps.stats.EXPECT().DailyCounts(gomock.Any(), gomock.Any()).Return(nil, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/daily?date_from=2024-01-01&date_to=2024-12-31", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []types.DailyCount `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Items, 366)
}

func TestServer_AdminRequiresToken(t *testing.T) {
	h, _ := newTestServer(t, defaultServerConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/groups", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/groups", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AdminDisabledWithoutToken(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.AdminToken = ""
	h, _ := newTestServer(t, cfg)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/groups", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func adminRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServer_AdminCreateGroup(t *testing.T) {
	h, deps := newTestServer(t, defaultServerConfig())
	deps.admin.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/groups", `{"slug":"promo","name":"Promo"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	var g types.Group
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, "promo", g.Slug)
}

func TestServer_AdminRejectsUnknownFields(t *testing.T) {
	h, _ := newTestServer(t, defaultServerConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/groups", `{"name":"Promo","owner":"me"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AdminErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{database.ErrNotFound, http.StatusNotFound},
		{database.ErrInUse, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		h, deps := newTestServer(t, defaultServerConfig())
		id := uuid.New()
		deps.admin.EXPECT().NumberByID(gomock.Any(), id).Return(&types.WhatsAppNumber{ID: id}, nil)
		deps.admin.EXPECT().UpdateNumber(gomock.Any(), gomock.Any()).Return(tt.err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/numbers/"+id.String()+"/deactivate", ""))
		assert.Equal(t, tt.code, rec.Code, tt.err)
	}
}

func TestServer_AdminBadID(t *testing.T) {
	h, _ := newTestServer(t, defaultServerConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(http.MethodDelete, "/api/admin/groups/42", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Health(t *testing.T) {
	h, _ := newTestServer(t, defaultServerConfig(), fakePinger{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	h, _ = newTestServer(t, defaultServerConfig(), fakePinger{err: errors.New("down")})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	h, deps := newTestServer(t, defaultServerConfig())
	deps.groups.EXPECT().GroupBySlug(gomock.Any(), "promo").Return(nil, database.ErrNotFound)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/l/promo", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `redirects_total{outcome="group-not-found"} 1`)
}
