package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// doRequest sends the request through the scenario's test server and
// captures status and body on the context.
func (tc *TestContext) doRequest(method, endpoint string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// createTracker seeds one tracker through the public API and remembers
// its generated id under the title.
func (tc *TestContext) createTracker(title, emoji, color, schedule, categoryTitle string) error {
	days := make([]int, 0, 7)
	for _, part := range strings.Split(schedule, ",") {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &n); err != nil {
			return fmt.Errorf("bad schedule value %q: %w", part, err)
		}
		days = append(days, n)
	}

	payload, err := json.Marshal(map[string]any{
		"title":          title,
		"emoji":          emoji,
		"color":          color,
		"schedule":       days,
		"category_title": categoryTitle,
	})
	if err != nil {
		return err
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/trackers", payload); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("seeding tracker %q failed with status %d: %s", title, tc.response.StatusCode, tc.responseBody)
	}

	var created struct {
		Tracker struct {
			ID string `json:"id"`
		} `json:"tracker"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return fmt.Errorf("failed to parse created tracker: %w", err)
	}
	tc.trackerIDs[title] = created.Tracker.ID
	return nil
}

// trackerID resolves a title seeded earlier in the scenario.
func (tc *TestContext) trackerID(title string) (string, error) {
	id, ok := tc.trackerIDs[title]
	if !ok {
		return "", fmt.Errorf("no tracker named %q was created in this scenario", title)
	}
	return id, nil
}

// Seeding steps

func theFollowingTrackersExist(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return ctx, fmt.Errorf("tracker table needs a header and at least one row")
	}

	index := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		index[cell.Value] = i
	}
	for _, col := range []string{"title", "emoji", "color", "schedule", "category"} {
		if _, ok := index[col]; !ok {
			return ctx, fmt.Errorf("tracker table is missing the %q column", col)
		}
	}

	for _, row := range table.Rows[1:] {
		err := tc.createTracker(
			row.Cells[index["title"]].Value,
			row.Cells[index["emoji"]].Value,
			row.Cells[index["color"]].Value,
			row.Cells[index["schedule"]].Value,
			row.Cells[index["category"]].Value,
		)
		if err != nil {
			return ctx, err
		}
	}
	return SetTestContext(ctx, tc), nil
}

func trackerIsCompletedOn(ctx context.Context, title, date string) (context.Context, error) {
	return iCompleteTrackerOn(ctx, title, date)
}

func categoryExists(ctx context.Context, title string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	payload, err := json.Marshal(map[string]string{"title": title})
	if err != nil {
		return ctx, err
	}
	if err := tc.doRequest(http.MethodPost, "/api/v1/categories", payload); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("seeding category %q failed with status %d: %s", title, tc.response.StatusCode, tc.responseBody)
	}
	return SetTestContext(ctx, tc), nil
}

// Request steps

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, []byte(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iUpdateTrackerWithBody(ctx context.Context, title string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	id, err := tc.trackerID(title)
	if err != nil {
		return ctx, err
	}
	if err := tc.doRequest(http.MethodPut, "/api/v1/trackers/"+id, []byte(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iDeleteTracker(ctx context.Context, title string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	id, err := tc.trackerID(title)
	if err != nil {
		return ctx, err
	}
	if err := tc.doRequest(http.MethodDelete, "/api/v1/trackers/"+id, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iCompleteTrackerOn(ctx context.Context, title, date string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	id, err := tc.trackerID(title)
	if err != nil {
		return ctx, err
	}

	payload, err := json.Marshal(map[string]string{"date": date})
	if err != nil {
		return ctx, err
	}
	if err := tc.doRequest(http.MethodPost, "/api/v1/trackers/"+id+"/records", payload); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iCompleteTrackerTomorrow(ctx context.Context, title string) (context.Context, error) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	return iCompleteTrackerOn(ctx, title, tomorrow)
}

func iUncompleteTrackerOn(ctx context.Context, title, date string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	id, err := tc.trackerID(title)
	if err != nil {
		return ctx, err
	}
	if err := tc.doRequest(http.MethodDelete, "/api/v1/trackers/"+id+"/records?date="+date, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

// Response steps

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response contains '%s'. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theVisibleListShouldHaveSections(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data struct {
		Sections []json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse visible list: %w", err)
	}
	if len(data.Sections) != expected {
		return fmt.Errorf("expected %d sections, got %d. Body: %s", expected, len(data.Sections), tc.responseBody)
	}
	return nil
}

func thePlaceholderShouldBe(ctx context.Context, expected string) error {
	return theResponseFieldShouldBe(ctx, "placeholder", expected)
}
