package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jwebster45206/map-engine/internal/handlers"
	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func listSeedMaps(client *http.Client, baseURL string) ([]string, error) {
	resp, err := client.Get(baseURL + "/v1/worldmap")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var listing struct {
		SeedMaps []string `json:"seed_maps"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse seed map listing: %w", err)
	}
	return listing.SeedMaps, nil
}

func createMapFromSeed(client *http.Client, baseURL string, seedMap string) (*worldmap.MapData, error) {
	payload, err := json.Marshal(handlers.CreateMapRequest{SeedMap: seedMap})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(baseURL+"/v1/worldmap", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp.StatusCode, body)
	}

	var mapData worldmap.MapData
	if err := json.Unmarshal(body, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map response: %w", err)
	}
	return &mapData, nil
}

func resolveLocation(client *http.Client, baseURL string, mapID uuid.UUID, description, previousNodeID string) (*handlers.ResolveResponse, error) {
	payload, err := json.Marshal(handlers.ResolveRequest{
		MapID:          mapID,
		Description:    description,
		PreviousNodeID: previousNodeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(baseURL+"/v1/resolve", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var result handlers.ResolveResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse resolve response: %w", err)
	}
	return &result, nil
}

func travelPath(client *http.Client, baseURL string, mapID uuid.UUID, from, to string) (*handlers.TravelResponse, error) {
	payload, err := json.Marshal(handlers.TravelRequest{
		MapID: mapID,
		From:  from,
		To:    to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(baseURL+"/v1/travel", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var result handlers.TravelResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse travel response: %w", err)
	}
	return &result, nil
}

func apiError(statusCode int, body []byte) error {
	var errorResp ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
		return fmt.Errorf("API returned status %d: %s", statusCode, string(body))
	}
	return fmt.Errorf("%s", errorResp.Error)
}
