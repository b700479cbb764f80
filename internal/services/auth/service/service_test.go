package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/core/posting"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/testkit"
	"internhasha/internal/services/auth/domain"
	"internhasha/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	up   *testkit.Upstream
	sess *session.Session
	svc  *Svc
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()
	up := testkit.NewUpstream(t)
	sess := session.New(session.NewMemory())
	c := internhasha.NewClient(internhasha.Options{BaseURL: up.URL}, sess)
	opts = append([]Option{WithUserCache(sess)}, opts...)
	return fixture{up: up, sess: sess, svc: New(c, sess, opts...)}
}

func TestToUser_DisplayNameFallback(t *testing.T) {
	cases := []struct {
		me   internhasha.Me
		want string
	}{
		{internhasha.Me{RealName: "김와플", Name: "waffle", Email: "e@x"}, "김와플"},
		{internhasha.Me{Name: "waffle", Email: "e@x"}, "waffle"},
		{internhasha.Me{Email: "e@x"}, "e@x"},
		{internhasha.Me{}, posting.DefaultDisplayName},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToUser(tc.me).Name)
	}
}

func TestStart_NoTokenStopsLoadingWithoutCalls(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.svc.State().Loading)

	st := f.svc.Start(context.Background())
	assert.False(t, st.Loading)
	assert.Nil(t, st.User)
	assert.Empty(t, f.up.Requests())
}

func TestStart_WithTokenRefreshes(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.SetToken("tok"))
	f.up.JSON(http.MethodGet, "/api/auth/me", 200, map[string]any{"id": 3, "email": "e@x"})

	st := f.svc.Start(context.Background())
	require.NotNil(t, st.User)
	assert.Equal(t, "3", st.User.ID)
	assert.Equal(t, "e@x", st.User.Name)
	assert.False(t, st.Loading)

	cached, err := f.sess.CachedUser()
	require.NoError(t, err)
	assert.Equal(t, st.User, cached)
}

func TestRefresh_FailureClearsUserAndCache(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.CacheUser(&posting.User{ID: "1", Name: "old"}))
	f.up.JSON(http.MethodGet, "/api/auth/me", 401, map[string]any{"message": "expired"})

	svc := New(internhasha.NewClient(internhasha.Options{BaseURL: f.up.URL}, f.sess), f.sess, WithUserCache(f.sess))
	require.NotNil(t, svc.State().User, "cached user is shown before validation")

	u, err := svc.Refresh(context.Background())
	assert.Nil(t, u)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnauthorized))
	assert.Nil(t, svc.State().User)

	cached, err := f.sess.CachedUser()
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestLogin_StoresTokenThenRefreshes(t *testing.T) {
	f := newFixture(t)
	f.up.JSON(http.MethodPost, "/api/auth/user/session", 200, map[string]any{"token": "tok-1"})
	f.up.Handle(http.MethodGet, "/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			testkit.WriteJSON(w, 401, map[string]any{"message": "no"})
			return
		}
		testkit.WriteJSON(w, 200, map[string]any{"id": "u1", "realName": "Kim"})
	})

	u, err := f.svc.Login(context.Background(), domain.LoginInput{Email: "kim@snu.ac.kr", Password: "pw"})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Kim", u.Name)

	tok, _ := f.sess.Token()
	assert.Equal(t, "tok-1", tok)
}

func TestLogin_ValidationAndServerErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Login(context.Background(), domain.LoginInput{Email: "nope"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
	assert.Empty(t, f.up.Requests())

	f.up.JSON(http.MethodPost, "/api/auth/user/session", 401, map[string]any{"message": "bad credentials"})
	_, err = f.svc.Login(context.Background(), domain.LoginInput{Email: "kim@snu.ac.kr", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "bad credentials", err.Error())
	tok, _ := f.sess.Token()
	assert.Empty(t, tok)
}

func TestSignup_FallsBackToFlatBody(t *testing.T) {
	f := newFixture(t)
	calls := 0
	f.up.Handle(http.MethodPost, "/api/auth/user", func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if _, structured := body["authType"]; structured {
			testkit.WriteJSON(w, 400, map[string]any{"message": "unknown field"})
			return
		}
		testkit.WriteJSON(w, 200, map[string]any{"token": "tok-flat"})
	})
	f.up.JSON(http.MethodGet, "/api/auth/me", 200, map[string]any{"name": "waffle"})

	u, err := f.svc.Signup(context.Background(), domain.SignupInput{Name: "w", Email: "w@snu.ac.kr", Password: "pw", SuccessCode: "sc"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "waffle", u.Name)
	tok, _ := f.sess.Token()
	assert.Equal(t, "tok-flat", tok)

	reqs := f.up.Requests()
	assert.JSONEq(t,
		`{"authType":"APPLICANT","info":{"type":"APPLICANT","name":"w","email":"w@snu.ac.kr","password":"pw","successCode":"sc"}}`,
		string(reqs[0].Body))
	assert.JSONEq(t, `{"name":"w","email":"w@snu.ac.kr","password":"pw"}`, string(reqs[1].Body))
}

func TestSignup_StructuredOmitsEmptySuccessCode(t *testing.T) {
	f := newFixture(t)
	f.up.JSON(http.MethodPost, "/api/auth/user", 200, map[string]any{})
	f.up.JSON(http.MethodGet, "/api/auth/me", 401, map[string]any{})

	u, err := f.svc.Signup(context.Background(), domain.SignupInput{Name: "w", Email: "w@snu.ac.kr", Password: "pw"})
	require.NoError(t, err)
	assert.Nil(t, u, "no token means the refresh cannot find a user")
	assert.Equal(t, 1, f.up.Count(http.MethodPost, "/api/auth/user"))
	assert.NotContains(t, string(f.up.Requests()[0].Body), "successCode")
}

func TestSignup_AllStrategiesFailReturnsLastError(t *testing.T) {
	f := newFixture(t)
	f.up.JSON(http.MethodPost, "/api/auth/user", 409, map[string]any{"message": "duplicate"})

	_, err := f.svc.Signup(context.Background(), domain.SignupInput{Name: "w", Email: "w@snu.ac.kr", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, 409, internhasha.StatusOf(err))
	assert.Equal(t, 2, f.up.Count(http.MethodPost, "/api/auth/user"))
}

func TestLogout_ClearsTokenWhenServerFails(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.SetToken("tok"))
	require.NoError(t, f.sess.CacheUser(&posting.User{ID: "1"}))
	f.up.JSON(http.MethodDelete, "/api/auth/user/session", 500, map[string]any{"message": "boom"})

	require.NoError(t, f.svc.Logout(context.Background()))

	tok, _ := f.sess.Token()
	assert.Empty(t, tok)
	cached, _ := f.sess.CachedUser()
	assert.Nil(t, cached)
	assert.Nil(t, f.svc.State().User)
	assert.Equal(t, "Bearer tok", f.up.Last().Header.Get("Authorization"))
}

func TestMailVerification(t *testing.T) {
	f := newFixture(t)
	f.up.JSON(http.MethodPost, "/api/auth/mail", 409, map[string]any{"message": "exists"})
	f.up.JSON(http.MethodPost, "/api/auth/mail/verify", 200, map[string]any{})
	f.up.JSON(http.MethodPost, "/api/auth/mail/validate", 200, map[string]any{"successCode": "sc-9"})

	require.NoError(t, f.svc.SendCode(context.Background(), domain.MailInput{SnuMail: "kim@snu.ac.kr"}))
	assert.Equal(t, 1, f.up.Count(http.MethodPost, "/api/auth/mail/verify"))

	code, err := f.svc.CheckCode(context.Background(), domain.MailCodeInput{SnuMail: "kim@snu.ac.kr", Code: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "sc-9", code)
}

func TestCheckCode_EmptySuccessCode(t *testing.T) {
	f := newFixture(t)
	f.up.JSON(http.MethodPost, "/api/auth/mail/validate", 200, map[string]any{})

	_, err := f.svc.CheckCode(context.Background(), domain.MailCodeInput{SnuMail: "kim@snu.ac.kr", Code: "1"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUpstream))
}
