package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriajanaka/go-auth-scaffold/internal/application"
	"github.com/satriajanaka/go-auth-scaffold/internal/domain/entity"
	"github.com/satriajanaka/go-auth-scaffold/internal/domain/repository"
	"github.com/satriajanaka/go-auth-scaffold/pkg/helpers"
	"github.com/satriajanaka/go-auth-scaffold/pkg/tokens"
)

type fakeRepo struct {
	users map[string]*entity.User
}

func (f *fakeRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo) GetByCredential(_ context.Context, credential string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == credential || u.Email == credential {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newRestoreEnv(t *testing.T) (*gin.Engine, *fakeRepo, *tokens.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{users: map[string]*entity.User{}}
	svc := application.NewService(repo, nil)
	tok := tokens.NewManager("test-secret", time.Hour)
	cookies := helpers.NewCookieManager("localhost", false)

	r := gin.New()
	r.Use(RestoreUser(svc, tok, cookies))
	r.GET("/whoami", func(c *gin.Context) {
		if su, ok := CurrentUser(c); ok {
			c.JSON(http.StatusOK, gin.H{"user": su})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": nil})
	})
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reached": true})
	})
	return r, repo, tok
}

func get(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func clearsTokenCookie(res *http.Response) bool {
	for _, ck := range res.Cookies() {
		if ck.Name == helpers.TokenCookie && ck.Value == "" && ck.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestRestoreUser_NoCookieIsAnonymous(t *testing.T) {
	r, _, _ := newRestoreEnv(t)

	w := get(r, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
	assert.False(t, clearsTokenCookie(w.Result()))
}

func TestRestoreUser_InvalidTokenClearsCookie(t *testing.T) {
	r, _, _ := newRestoreEnv(t)

	w := get(r, "/whoami", "not-a-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
	assert.True(t, clearsTokenCookie(w.Result()))
}

func TestRestoreUser_ExpiredTokenClearsCookie(t *testing.T) {
	r, repo, _ := newRestoreEnv(t)
	repo.users["u1"] = &entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"}

	expired := tokens.NewManager("test-secret", -time.Second)
	tok, _, err := expired.Issue(entity.SafeUser{ID: "u1", Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	w := get(r, "/whoami", tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
	assert.True(t, clearsTokenCookie(w.Result()))
}

func TestRestoreUser_DeletedAccountClearsCookie(t *testing.T) {
	r, _, tok := newRestoreEnv(t)

	s, _, err := tok.Issue(entity.SafeUser{ID: "gone", Username: "ghost", Email: "ghost@example.com"})
	require.NoError(t, err)

	w := get(r, "/whoami", s)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
	assert.True(t, clearsTokenCookie(w.Result()))
}

func TestRestoreUser_ValidTokenRestoresFreshState(t *testing.T) {
	r, repo, tok := newRestoreEnv(t)
	repo.users["u1"] = &entity.User{ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: "x"}

	// The embedded projection is stale on purpose; restoration must
	// reflect the re-fetched account.
	s, _, err := tok.Issue(entity.SafeUser{ID: "u1", Username: "old-name", Email: "old@example.com"})
	require.NoError(t, err)

	w := get(r, "/whoami", s)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":{"id":"u1","username":"alice","email":"alice@example.com"}}`, w.Body.String())
	assert.False(t, clearsTokenCookie(w.Result()))
}

func TestRestoreUser_IdempotentAcrossRequests(t *testing.T) {
	r, repo, tok := newRestoreEnv(t)
	repo.users["u1"] = &entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"}

	s, _, err := tok.Issue(entity.SafeUser{ID: "u1", Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	first := get(r, "/whoami", s)
	second := get(r, "/whoami", s)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRequireAuth(t *testing.T) {
	r, repo, tok := newRestoreEnv(t)
	repo.users["u1"] = &entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"}

	w := get(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s, _, err := tok.Issue(entity.SafeUser{ID: "u1", Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	w = get(r, "/protected", s)
	assert.Equal(t, http.StatusOK, w.Code)
}
