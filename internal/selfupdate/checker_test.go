package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/lexiz/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		tag       string
		available bool
	}{
		{"newer release", "v1.2.0", "v1.3.0", true},
		{"same release", "v1.3.0", "v1.3.0", false},
		{"older release", "v2.0.0", "v1.9.9", false},
		{"current without v prefix", "1.2.0", "v1.2.1", true},
		{"prerelease is older than final", "v1.3.0-rc.1", "v1.3.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, http.StatusOK, `{"tag_name":"`+tt.tag+`","html_url":"https://example.com/rel"}`)
			checker := NewChecker(WithBaseURL(server.URL))

			res, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.available, res.UpdateAvailable)
			assert.Equal(t, tt.tag, res.LatestVersion)
			assert.Equal(t, "https://example.com/rel", res.ReleaseURL)
		})
	}
}

func TestCheck_Errors(t *testing.T) {
	t.Run("invalid current version", func(t *testing.T) {
		checker := NewChecker(WithBaseURL("http://127.0.0.1:0"))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.Error(t, err)
	})

	t.Run("invalid tag", func(t *testing.T) {
		server := releaseServer(t, http.StatusOK, `{"tag_name":"nightly"}`)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid release tag")
	})

	t.Run("http error", func(t *testing.T) {
		server := releaseServer(t, http.StatusForbidden, `{"message":"rate limited"}`)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("other repository", func(t *testing.T) {
		checker := NewChecker(WithBaseURL(releaseServer(t, http.StatusOK, `{"tag_name":"v9.0.0"}`).URL), WithRepository("someone", "fork"))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})
}
