package web

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/tsnews/newsdesk/internal/config"
	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/domain"
	"github.com/tsnews/newsdesk/internal/mocks"
	"github.com/tsnews/newsdesk/internal/service"
	"github.com/tsnews/newsdesk/internal/validate"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	gob.Register(Session{})
	m.Run()
}

func newTestServer(t *testing.T) (*mocks.MockService, *httptest.Server) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	cfg := config.Configuration{}
	manager := scs.NewCookieManager("u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")

	h := New(&cfg, svc, manager)
	router := chi.NewRouter()
	h.Mount(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return svc, server
}

// login runs the real login flow against the mocked service and returns the
// issued session cookies.
func login(t *testing.T, svc *mocks.MockService, server *httptest.Server, u domain.UserAuth) []*http.Cookie {
	t.Helper()
	svc.EXPECT().Authenticate(gomock.Any(), u.Email, "hunter2hunter2").Return(u, nil)

	res := postForm(t, server, "/login", nil, url.Values{
		"email":    {u.Email},
		"password": {"hunter2hunter2"},
	})
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", res.StatusCode)
	}
	return res.Cookies()
}

func postForm(t *testing.T, server *httptest.Server, path string, cookies []*http.Cookie, form url.Values) *http.Response {
	t.Helper()
	return doRequest(t, server, http.MethodPost, path, cookies, form)
}

func doRequest(t *testing.T, server *httptest.Server, method, path string, cookies []*http.Cookie, form url.Values) *http.Response {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, server.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func decode(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal("failed to decode response body:", err)
	}
	return body
}

func TestSignUp(t *testing.T) {
	form := url.Values{
		"username":         {"reader"},
		"email":            {"reader@example.com"},
		"password":         {"hunter2hunter2"},
		"confirm_password": {"hunter2hunter2"},
	}

	t.Run("created", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, f domain.RegistrationForm) (service.RegisterResult, error) {
				if f.Username != "reader" || f.Email != "reader@example.com" {
					t.Errorf("unexpected form: %+v", f)
				}
				if f.Additional {
					t.Error("additional should be unset")
				}
				return service.RegisterResult{UserID: 7}, nil
			})

		res := postForm(t, server, SignUpRoute, nil, form)
		if res.StatusCode != http.StatusCreated {
			t.Errorf("expected status 201, got %d", res.StatusCode)
		}
		body := decode(t, res)
		if body["id"] != float64(7) {
			t.Errorf("expected id 7, got %v", body["id"])
		}
		if _, ok := body["message"]; !ok {
			t.Error("expected a confirmation message")
		}
	})

	t.Run("additional profile fields", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, f domain.RegistrationForm) (service.RegisterResult, error) {
				if !f.Additional || f.Age == nil || *f.Age != 31 || f.Country != "Norway" {
					t.Errorf("additional fields lost in parsing: %+v", f)
				}
				return service.RegisterResult{UserID: 8}, nil
			})

		extra := url.Values{}
		for k, v := range form {
			extra[k] = v
		}
		extra.Set("additional", "on")
		extra.Set("age", "31")
		extra.Set("country", "Norway")

		res := postForm(t, server, SignUpRoute, nil, extra)
		if res.StatusCode != http.StatusCreated {
			t.Errorf("expected status 201, got %d", res.StatusCode)
		}
		res.Body.Close()
	})

	t.Run("validation failure", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(service.RegisterResult{}, &service.ValidationError{
			Fields: validate.FieldErrors{{Field: "email", Message: "this email is already registered"}},
		})

		res := postForm(t, server, SignUpRoute, nil, form)
		if res.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", res.StatusCode)
		}
		body := decode(t, res)
		fields, ok := body["errors"].(map[string]any)
		if !ok || fields["email"] == nil {
			t.Errorf("expected a field error on email, got %v", body)
		}
	})

	t.Run("mail warning", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(service.RegisterResult{UserID: 9, MailWarning: true}, nil)

		res := postForm(t, server, SignUpRoute, nil, form)
		body := decode(t, res)
		if _, ok := body["warning"]; !ok {
			t.Error("expected a warning about the confirmation mail")
		}
		if _, ok := body["message"]; ok {
			t.Error("the success message should be replaced by the warning")
		}
	})
}

func TestValidateEmail(t *testing.T) {
	svc, server := newTestServer(t)
	svc.EXPECT().ValidateEmail(gomock.Any(), "reader@example.com").Return(service.EmailValidation{Valid: true, Message: "email is valid"}, nil)

	res := doRequest(t, server, http.MethodGet, "/api/validate-email?email=reader%40example.com", nil, nil)
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", res.StatusCode)
	}
	body := decode(t, res)
	if body["valid"] != true {
		t.Errorf("expected a valid verdict, got %v", body)
	}
}

func TestLogin(t *testing.T) {
	t.Run("success issues a session", func(t *testing.T) {
		svc, server := newTestServer(t)
		cookies := login(t, svc, server, domain.UserAuth{
			UserID:   4,
			Username: "reader",
			Email:    "reader@example.com",
		})
		if len(cookies) == 0 {
			t.Fatal("expected a session cookie")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.UserAuth{}, service.ErrAccountNotFound)

		res := postForm(t, server, LoginRoute, nil, url.Values{"email": {"x@example.com"}, "password": {"pw"}})
		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", res.StatusCode)
		}
		body := decode(t, res)
		fields, _ := body["errors"].(map[string]any)
		if fields["email"] == nil {
			t.Errorf("expected the failure on the email field, got %v", body)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.UserAuth{}, service.ErrIncorrectPassword)

		res := postForm(t, server, LoginRoute, nil, url.Values{"email": {"x@example.com"}, "password": {"pw"}})
		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", res.StatusCode)
		}
		body := decode(t, res)
		fields, _ := body["errors"].(map[string]any)
		if fields["password"] == nil {
			t.Errorf("expected the failure on the password field, got %v", body)
		}
	})
}

func TestGetArticle(t *testing.T) {
	t.Run("anonymous view of a news article", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().GetArticle(gomock.Any(), int64(10), int64(0)).Return(domain.Article{
			ID:       10,
			Category: domain.CategoryNews,
			Title:    "headline",
		}, nil)

		res := doRequest(t, server, http.MethodGet, "/news/10", nil, nil)
		if res.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", res.StatusCode)
		}
		if cc := res.Header.Get("Cache-Control"); cc != "no-store" {
			t.Errorf("tracked articles must not be cached, got %q", cc)
		}
		body := decode(t, res)
		if body["title"] != "headline" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("logged-in viewer id reaches the service", func(t *testing.T) {
		svc, server := newTestServer(t)
		cookies := login(t, svc, server, domain.UserAuth{UserID: 4, Username: "reader", Email: "reader@example.com"})

		svc.EXPECT().GetArticle(gomock.Any(), int64(10), int64(4)).Return(domain.Article{ID: 10, Category: "opinion"}, nil)

		res := doRequest(t, server, http.MethodGet, "/news/10", cookies, nil)
		if res.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", res.StatusCode)
		}
		if cc := res.Header.Get("Cache-Control"); cc != "" {
			t.Errorf("untracked articles should stay cacheable, got %q", cc)
		}
		res.Body.Close()
	})

	t.Run("missing article", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().GetArticle(gomock.Any(), int64(404), int64(0)).Return(domain.Article{}, db.ErrNotFound)

		res := doRequest(t, server, http.MethodGet, "/news/404", nil, nil)
		if res.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", res.StatusCode)
		}
		res.Body.Close()
	})

	t.Run("malformed id", func(t *testing.T) {
		_, server := newTestServer(t)

		res := doRequest(t, server, http.MethodGet, "/news/abc", nil, nil)
		if res.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", res.StatusCode)
		}
		res.Body.Close()
	})
}

func TestUpdateArticle(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		_, server := newTestServer(t)

		res := doRequest(t, server, http.MethodPut, "/news/10", nil, url.Values{"title": {"t"}, "body": {"b"}})
		if res.StatusCode != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", res.StatusCode)
		}
		res.Body.Close()
	})

	t.Run("logged in", func(t *testing.T) {
		svc, server := newTestServer(t)
		cookies := login(t, svc, server, domain.UserAuth{UserID: 4, Username: "reader", Email: "reader@example.com"})

		svc.EXPECT().UpdateArticle(gomock.Any(), int64(10), "new title", "new body", domain.Identity{UserID: 4}).Return(nil)

		res := doRequest(t, server, http.MethodPut, "/news/10", cookies, url.Values{"title": {"new title"}, "body": {"new body"}})
		if res.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", res.StatusCode)
		}
		res.Body.Close()
	})
}

func TestListStats(t *testing.T) {
	t.Run("filters and paging pass through", func(t *testing.T) {
		svc, server := newTestServer(t)
		cookies := login(t, svc, server, domain.UserAuth{UserID: 4, Username: "reader", Email: "reader@example.com"})

		uid := int64(4)
		svc.EXPECT().Query(gomock.Any(), service.Filter{
			ArticleID: 10,
			Action:    domain.ActionView,
			SortBy:    "created_at",
			SortDesc:  true,
		}, domain.Identity{UserID: 4}, 2).Return(service.Page{
			Entries: []domain.ActivityEntry{
				{ID: 101, UserID: &uid, ArticleID: 10, Action: domain.ActionView, Created: 100},
			},
			Page:     2,
			PageSize: service.PageSize,
			Total:    70,
		}, nil)

		res := doRequest(t, server, http.MethodGet,
			"/stats?article_id=10&action=view&sort=created_at&dir=desc&page=2", cookies, nil)
		if res.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", res.StatusCode)
		}
		body := decode(t, res)
		if body["total"] != float64(70) || body["page"] != float64(2) {
			t.Errorf("unexpected paging info: %v", body)
		}
		entries, _ := body["entries"].([]any)
		if len(entries) != 1 {
			t.Fatalf("expected one entry, got %v", body["entries"])
		}
	})

	t.Run("invalid action", func(t *testing.T) {
		svc, server := newTestServer(t)
		cookies := login(t, svc, server, domain.UserAuth{UserID: 4, Username: "reader", Email: "reader@example.com"})

		res := doRequest(t, server, http.MethodGet, "/stats?action=delete", cookies, nil)
		if res.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", res.StatusCode)
		}
		res.Body.Close()
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().Query(gomock.Any(), gomock.Any(), domain.Identity{}, gomock.Any()).Return(service.Page{}, service.ErrForbidden)

		res := doRequest(t, server, http.MethodGet, "/stats", nil, nil)
		if res.StatusCode != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", res.StatusCode)
		}
		res.Body.Close()
	})
}

func TestClearStats(t *testing.T) {
	svc, server := newTestServer(t)
	cookies := login(t, svc, server, domain.UserAuth{UserID: 1, Username: "admin", Email: "admin@example.com", Admin: true})

	svc.EXPECT().DeleteAll(gomock.Any(), domain.Identity{UserID: 1, Admin: true}).Return(int64(42), nil)

	res := postForm(t, server, "/stats/clear", cookies, url.Values{})
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", res.StatusCode)
	}
	body := decode(t, res)
	if body["deleted"] != float64(42) {
		t.Errorf("expected 42 deletions, got %v", body)
	}
}

func TestDeleteStat(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		svc, server := newTestServer(t)
		cookies := login(t, svc, server, domain.UserAuth{UserID: 4, Username: "reader", Email: "reader@example.com"})

		svc.EXPECT().DeleteOne(gomock.Any(), int64(5), domain.Identity{UserID: 4}).Return(nil)

		res := doRequest(t, server, http.MethodDelete, "/stats/5", cookies, nil)
		if res.StatusCode != http.StatusNoContent {
			t.Errorf("expected status 204, got %d", res.StatusCode)
		}
		res.Body.Close()
	})

	t.Run("forbidden", func(t *testing.T) {
		svc, server := newTestServer(t)
		svc.EXPECT().DeleteOne(gomock.Any(), int64(5), domain.Identity{}).Return(service.ErrForbidden)

		res := doRequest(t, server, http.MethodDelete, "/stats/5", nil, nil)
		if res.StatusCode != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", res.StatusCode)
		}
		res.Body.Close()
	})
}

func TestDebugRequestLogging(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	var buf bytes.Buffer
	prevLogger := zlog.Logger
	prevLevel := zerolog.GlobalLevel()
	zlog.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		zlog.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	cfg := config.Configuration{Debug: true}
	h := New(&cfg, svc, scs.NewCookieManager("u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4"))
	router := chi.NewRouter()
	h.Mount(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	svc.EXPECT().ValidateEmail(gomock.Any(), gomock.Any()).Return(service.EmailValidation{Valid: true}, nil)

	res := doRequest(t, server, http.MethodGet, "/api/validate-email?email=reader%40example.com", nil, nil)
	res.Body.Close()

	if !strings.Contains(buf.String(), "/api/validate-email") {
		t.Errorf("expected the request path in the debug log, got %q", buf.String())
	}
}

func TestUpdateStatComment(t *testing.T) {
	svc, server := newTestServer(t)
	cookies := login(t, svc, server, domain.UserAuth{UserID: 4, Username: "reader", Email: "reader@example.com"})

	svc.EXPECT().UpdateComment(gomock.Any(), int64(5), "read twice", domain.Identity{UserID: 4}).Return(nil)

	res := doRequest(t, server, http.MethodPut, "/stats/5/comment", cookies, url.Values{"comment": {"read twice"}})
	if res.StatusCode != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", res.StatusCode)
	}
	res.Body.Close()
}
