package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/map-engine/internal/storage"
	"github.com/jwebster45206/map-engine/pkg/travel"
)

func TestTravelHandler_ServeHTTP(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	data := harborMap()
	if err := mockStorage.SaveMap(context.Background(), data.ID, data); err != nil {
		t.Fatalf("Failed to seed storage: %v", err)
	}
	handler := NewTravelHandler(testLogger(), mockStorage)

	tests := []struct {
		name           string
		method         string
		body           interface{}
		expectedStatus int
		expectedSteps  int
		expectedError  string
	}{
		{
			name:           "direct route",
			method:         http.MethodPost,
			body:           TravelRequest{MapID: data.ID, From: "docks", To: "tavern"},
			expectedStatus: http.StatusOK,
			expectedSteps:  3,
		},
		{
			name:           "no route",
			method:         http.MethodPost,
			body:           TravelRequest{MapID: data.ID, From: "docks", To: "island"},
			expectedStatus: http.StatusOK,
			expectedSteps:  0,
		},
		{
			name:           "unknown map",
			method:         http.MethodPost,
			body:           TravelRequest{MapID: uuid.New(), From: "docks", To: "tavern"},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Map not found",
		},
		{
			name:           "missing endpoints",
			method:         http.MethodPost,
			body:           TravelRequest{MapID: data.ID, From: "docks"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "from and to are required",
		},
		{
			name:           "missing map id",
			method:         http.MethodPost,
			body:           TravelRequest{From: "docks", To: "tavern"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "map_id is required",
		},
		{
			name:           "method not allowed",
			method:         http.MethodGet,
			body:           nil,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if tt.body != nil {
				if err := json.NewEncoder(&buf).Encode(tt.body); err != nil {
					t.Fatalf("Failed to encode body: %v", err)
				}
			}

			req := httptest.NewRequest(tt.method, "/v1/travel", &buf)
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedError != "" {
				var errResp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
				return
			}

			var resp TravelResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Len(t, resp.Steps, tt.expectedSteps)
		})
	}
}

func TestTravelHandler_StepShape(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	data := harborMap()
	if err := mockStorage.SaveMap(context.Background(), data.ID, data); err != nil {
		t.Fatalf("Failed to seed storage: %v", err)
	}
	handler := NewTravelHandler(testLogger(), mockStorage)

	body, _ := json.Marshal(TravelRequest{MapID: data.ID, From: "docks", To: "tavern"})
	req := httptest.NewRequest(http.MethodPost, "/v1/travel", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp TravelResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	expected := []travel.Step{
		{Step: travel.StepNode, ID: "docks"},
		{Step: travel.StepEdge, ID: "e1"},
		{Step: travel.StepNode, ID: "tavern"},
	}
	assert.Equal(t, expected, resp.Steps)
}
