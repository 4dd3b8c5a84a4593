package backtester

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultBacktestConfig().Validate())
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := DefaultBacktestConfig()
		cfg.Gamma = 0
		cfg.Constraints = []string{"ZeroBeta", "Leverage"}
		cfg.Slurm.Mem = "lots"

		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "gamma")
		require.Contains(t, err.Error(), `unknown constraint "Leverage"`)
		require.Contains(t, err.Error(), `invalid memory request "lots"`)
	})
}

func TestSubmit(t *testing.T) {
	t.Run("dry run never calls the service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("dry run should not make a request")
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		out, err := client.Submit(context.Background(), DefaultBacktestConfig(), true)
		require.NoError(t, err)
		require.True(t, out.DryRun)
		require.NotEqual(t, uuid.Nil, out.SubmissionID)
		require.Contains(t, out.Payload, `"signalName": "momentum"`)
		require.Empty(t, out.JobIDs)
	})

	t.Run("posts config and reads job ids", func(t *testing.T) {
		var received submitRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/jobs", r.URL.Path)
			require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusAccepted)
			w.Write([]byte(`{"jobIds": ["101", "102"]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL+"/", "secret")
		out, err := client.Submit(context.Background(), DefaultBacktestConfig(), false)
		require.NoError(t, err)
		require.Equal(t, []string{"101", "102"}, out.JobIDs)
		require.Equal(t, out.SubmissionID, received.SubmissionID)
		require.Equal(t, []string{"ZeroBeta", "ZeroInvestment"}, received.Config.Constraints)
	})

	t.Run("surfaces service errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "alpha file not found"}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "").Submit(context.Background(), DefaultBacktestConfig(), false)
		require.EqualError(t, err, "failed with status code 400: alpha file not found")
	})

	t.Run("invalid config is rejected before anything else", func(t *testing.T) {
		cfg := DefaultBacktestConfig()
		cfg.SignalName = ""
		_, err := NewClient("", "").Submit(context.Background(), cfg, true)
		require.Error(t, err)
	})
}
