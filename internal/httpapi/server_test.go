package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binconv/internal/domain"
	"binconv/internal/httpapi"
	"binconv/internal/services/conversion"
	"binconv/internal/shell"
)

func newServer(t *testing.T, opts ...httpapi.Option) (*httptest.Server, *httpapi.Server) {
	t.Helper()
	api := httpapi.New(conversion.New(nil, nil), nil, opts...)
	ts := httptest.NewServer(api)
	t.Cleanup(func() {
		ts.Close()
		api.Close()
	})
	return ts, api
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestIndex(t *testing.T) {
	ts, _ := newServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(b, []byte("Binary Converter")))

	resp = do(t, http.MethodGet, ts.URL+"/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts, _ := newServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, resp))
}

func TestConvert(t *testing.T) {
	ts, _ := newServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/convert", `{"mode":"textToBinary","input":"Hi"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "01001000 01101001", decode[domain.ConvertResponse](t, resp).Output)

	resp = do(t, http.MethodPost, ts.URL+"/api/convert", `{"mode":"binaryToText","input":"01001000  01101001"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hi", decode[domain.ConvertResponse](t, resp).Output)
}

func TestConvert_InvalidToken(t *testing.T) {
	ts, _ := newServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/convert", `{"mode":"binaryToText","input":"01001000 0110100x"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	apiErr := decode[domain.APIError](t, resp)
	assert.Equal(t, "Error: Invalid input format.", apiErr.Error)
	assert.Equal(t, "invalid_binary_token", apiErr.Kind)
	assert.Equal(t, "0110100x", apiErr.Token)
	require.NotNil(t, apiErr.Index)
	assert.Equal(t, 1, *apiErr.Index)
}

func TestConvert_BadRequest(t *testing.T) {
	ts, _ := newServer(t)

	for _, body := range []string{
		`{"mode":"sideways","input":"Hi"}`,
		`{"input":"Hi","extra":true}`,
		`not json`,
	} {
		resp := do(t, http.MethodPost, ts.URL+"/api/convert", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}

	resp := do(t, http.MethodGet, ts.URL+"/api/convert", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestSessions_Lifecycle(t *testing.T) {
	ts, api := newServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/sessions", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.SessionResponse](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, domain.TextToBinary, created.Mode)
	assert.Equal(t, 1, api.SessionCount())

	base := ts.URL + "/api/sessions/" + created.ID

	resp = do(t, http.MethodPut, base+"/input", `{"input":"Hi"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[domain.SessionResponse](t, resp)
	assert.Equal(t, "01001000 01101001", st.Output)

	resp = do(t, http.MethodPost, base+"/swap", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st = decode[domain.SessionResponse](t, resp)
	assert.Equal(t, "01001000 01101001", st.Input)
	assert.Equal(t, domain.BinaryToText, st.Mode)
	assert.Equal(t, "Hi", st.Output)

	resp = do(t, http.MethodPut, base+"/input", `{"input":"0100100x"}`)
	st = decode[domain.SessionResponse](t, resp)
	assert.Equal(t, domain.InvalidFormatMessage, st.Output)

	resp = do(t, http.MethodPut, base+"/mode", `{"mode":"textToBinary"}`)
	st = decode[domain.SessionResponse](t, resp)
	assert.Equal(t, domain.TextToBinary, st.Mode)
	assert.Equal(t, converterOutputFor0100100x, st.Output)

	resp = do(t, http.MethodPost, base+"/clear", "")
	st = decode[domain.SessionResponse](t, resp)
	assert.Empty(t, st.Input)
	assert.Empty(t, st.Output)

	resp = do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, decode[domain.SessionResponse](t, resp).ID)

	resp = do(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Zero(t, api.SessionCount())

	resp = do(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// "0100100x" encoded as text, one token per character.
const converterOutputFor0100100x = "00110000 00110001 00110000 00110000 00110001 00110000 00110000 01111000"

func TestSessions_CreateWithMode(t *testing.T) {
	ts, _ := newServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/sessions", `{"mode":"binaryToText"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, domain.BinaryToText, decode[domain.SessionResponse](t, resp).Mode)

	resp = do(t, http.MethodPost, ts.URL+"/api/sessions", `{"mode":"upward"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessions_SetModeRequiresMode(t *testing.T) {
	ts, _ := newServer(t)
	created := decode[domain.SessionResponse](t, do(t, http.MethodPost, ts.URL+"/api/sessions", ""))

	resp := do(t, http.MethodPut, ts.URL+"/api/sessions/"+created.ID+"/mode", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessions_Unknown(t *testing.T) {
	ts, _ := newServer(t)
	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/sessions/missing", ""},
		{http.MethodPut, "/api/sessions/missing/input", `{"input":"x"}`},
		{http.MethodPost, "/api/sessions/missing/swap", ""},
		{http.MethodPost, "/api/sessions/missing/clear", ""},
	} {
		resp := do(t, tc.method, ts.URL+tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, tc.path)
		assert.Equal(t, "session not found", decode[domain.APIError](t, resp).Error)
	}
}

func TestSessions_Limit(t *testing.T) {
	ts, api := newServer(t, httpapi.WithMaxSessions(2))

	first := decode[domain.SessionResponse](t, do(t, http.MethodPost, ts.URL+"/api/sessions", ""))
	resp := do(t, http.MethodPost, ts.URL+"/api/sessions", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, http.MethodPost, ts.URL+"/api/sessions", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "too many sessions", decode[domain.APIError](t, resp).Error)
	assert.Equal(t, 2, api.SessionCount())

	resp = do(t, http.MethodDelete, ts.URL+"/api/sessions/"+first.ID, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, http.MethodPost, ts.URL+"/api/sessions", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestSessions_WithSessionOptions(t *testing.T) {
	ts, _ := newServer(t, httpapi.WithSessionOptions(shell.WithMode(domain.BinaryToText)))
	created := decode[domain.SessionResponse](t, do(t, http.MethodPost, ts.URL+"/api/sessions", ""))
	assert.Equal(t, domain.BinaryToText, created.Mode)
}
