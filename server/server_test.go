package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postCompile(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/api/compile", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCompileHandler(t *testing.T) {
	srv := httptest.NewServer(newTestServer().Router())
	defer srv.Close()

	resp := postCompile(t, srv.URL, `{"expression": "3 + 5 * (10 / 2)"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var res struct {
		Tokens []json.RawMessage `json:"tokens"`
		AST    json.RawMessage   `json:"ast"`
		Result float64           `json:"result"`
		Error  string            `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Empty(t, res.Error)
	assert.Equal(t, 28.0, res.Result)
	assert.Len(t, res.Tokens, 9)
	assert.NotEmpty(t, res.AST)
}

func TestCompileHandlerInvalidExpression(t *testing.T) {
	srv := httptest.NewServer(newTestServer().Router())
	defer srv.Close()

	cases := []struct {
		name string
		expr string
		msg  string
	}{
		{"lexical", "2 $ 3", "invalid character"},
		{"syntactic", "2 +", "expected"},
		{"semantic", "10 / 0", "division by zero"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]string{"expression": c.expr})
			require.NoError(t, err)
			resp := postCompile(t, srv.URL, string(body))
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var res struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
			assert.Contains(t, res.Error, c.msg)
		})
	}
}

func TestCompileHandlerBadRequest(t *testing.T) {
	srv := httptest.NewServer(newTestServer().Router())
	defer srv.Close()

	resp := postCompile(t, srv.URL, `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(newTestServer().Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewLoggerFanout(t *testing.T) {
	var text, jsonBuf bytes.Buffer
	log := NewLogger(&text, &jsonBuf)
	log.Info("hello", "k", "v")
	assert.Contains(t, text.String(), "hello")
	var record map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
}
