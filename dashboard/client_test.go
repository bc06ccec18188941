package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/safetydash/schema"
)

const analyticsBody = `{
	"isSuccess": true,
	"data": {
		"recentRecalls": [{
			"reportReceivedDate": "2024-05-01",
			"nhtsaId": "24V321000",
			"manufacturer": "Ford Motor Company",
			"subject": "Rearview camera may fail",
			"component": "BACK OVER PREVENTION",
			"campaignNumber": "24V321",
			"recallType": "Vehicle",
			"potentiallyAffected": "123456",
			"recallDescription": "",
			"consequenceSummary": "",
			"correctiveAction": "",
			"parkOutsideAdvisory": "No",
			"doNotDriveAdvisory": "No",
			"completionRate": "12%"
		}],
		"recallsByManufacturer": [{"manufacturer": "Ford Motor Company", "recallCount": 67}],
		"recallsByYear": [{"year": 2023, "count": 912}, {"year": 2024, "count": 1020}],
		"crashTestPerformance": [{"manufacturer": "Volvo", "totalTests": 10, "passedTests": 9, "failedTests": 1, "passRate": 0.9}]
	},
	"error": null
}`

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	_, err := NewClient("", logger)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewClient("localhost:5276", logger)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	client, err := NewClient("http://localhost:5276/", logger, WithTimeout(3*time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5276", client.baseURL)
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)

	custom := &http.Client{}
	client, err = NewClient("http://localhost:5276", logger, WithHTTPClient(custom))
	require.NoError(t, err)
	assert.Same(t, custom, client.httpClient)
}

func TestDefaultAnalyticsParams(t *testing.T) {
	assert.Equal(t, AnalyticsParams{
		RecentRecallsCount:        10,
		TopManufacturersCount:     10,
		MostRecalledVehiclesCount: 5,
	}, DefaultAnalyticsParams())
}

func TestGetAnalytics(t *testing.T) {
	tests := []struct {
		name   string
		params AnalyticsParams
		want   map[string]string
	}{
		{
			name:   "defaults",
			params: DefaultAnalyticsParams(),
			want: map[string]string{
				"recentRecallsCount":        "10",
				"topManufacturersCount":     "10",
				"mostRecalledVehiclesCount": "5",
			},
		},
		{
			name:   "custom counts",
			params: AnalyticsParams{RecentRecallsCount: 25, TopManufacturersCount: 0, MostRecalledVehiclesCount: 3},
			want: map[string]string{
				"recentRecallsCount":        "25",
				"topManufacturersCount":     "0",
				"mostRecalledVehiclesCount": "3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/dashboard/analytics", r.URL.Path)
				assert.Equal(t, "text/plain", r.Header.Get("Accept"))
				for key, value := range tt.want {
					assert.Equal(t, value, r.URL.Query().Get(key), key)
				}
				fmt.Fprint(w, analyticsBody)
			}))
			defer server.Close()

			client, err := NewClient(server.URL, zerolog.Nop())
			require.NoError(t, err)

			resp, err := client.GetAnalytics(context.Background(), tt.params)
			require.NoError(t, err)
			require.True(t, resp.IsSuccess)
			assert.Nil(t, resp.Error)

			require.Len(t, resp.Data.RecentRecalls, 1)
			assert.Equal(t, "24V321000", resp.Data.RecentRecalls[0].NhtsaID)
			assert.Len(t, resp.Data.RecallsByManufacturer, 1)
			assert.Len(t, resp.Data.RecallsByYear, 2)
			assert.InDelta(t, 0.9, resp.Data.CrashTestPerformance[0].PassRate, 0.0001)
			assert.Nil(t, resp.Data.MostRecalledVehicles)
			assert.Nil(t, resp.Data.RolloverResistanceData)
		})
	}
}

func TestGetAnalyticsInvalidParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.GetAnalytics(context.Background(), AnalyticsParams{RecentRecallsCount: -1})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestGetAnalyticsFailures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "API request failed with status 500",
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "API request failed with status 404",
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not json")
			},
			wantMsg: "failed to decode response",
		},
		{
			name: "trailing data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"isSuccess": true, "data": null, "error": null}}garbage`)
			},
			wantMsg: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client, err := NewClient(server.URL, zerolog.Nop())
			require.NoError(t, err)

			resp, err := client.GetAnalytics(context.Background(), DefaultAnalyticsParams())
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var apiErr *schema.APIError
			if tt.wantStatus != 0 {
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			} else {
				assert.False(t, errors.As(err, &apiErr))
			}
		})
	}
}

func TestGetAnalyticsLogsFailures(t *testing.T) {
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		baseURL string
		params  AnalyticsParams
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			params: DefaultAnalyticsParams(),
		},
		{
			name: "decode",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not json")
			},
			params: DefaultAnalyticsParams(),
		},
		{
			name:    "transport",
			baseURL: closedURL,
			params:  DefaultAnalyticsParams(),
		},
		{
			name:    "invalid params",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			params:  AnalyticsParams{RecentRecallsCount: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := tt.baseURL
			if baseURL == "" {
				server := httptest.NewServer(tt.handler)
				defer server.Close()
				baseURL = server.URL
			}

			var buf bytes.Buffer
			client, err := NewClient(baseURL, zerolog.New(&buf))
			require.NoError(t, err)

			_, err = client.GetAnalytics(context.Background(), tt.params)
			require.Error(t, err)

			var errorLines []map[string]any
			dec := json.NewDecoder(&buf)
			for dec.More() {
				var line map[string]any
				require.NoError(t, dec.Decode(&line))
				if line["level"] == "error" {
					errorLines = append(errorLines, line)
				}
			}

			require.Len(t, errorLines, 1)
			assert.Equal(t, "Error fetching dashboard analytics", errorLines[0]["message"])
			assert.Equal(t, err.Error(), errorLines[0]["error"])
		})
	}
}
