package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/amarktai/marketing-backend/internal/auth"
	"github.com/amarktai/marketing-backend/internal/handlers"
	"github.com/amarktai/marketing-backend/internal/service"
	"github.com/amarktai/marketing-backend/internal/store"
)

type bddTestContext struct {
	server       *httptest.Server
	lastResponse *http.Response
	lastBody     []byte
}

func (ctx *bddTestContext) reset() {
	if ctx.lastResponse != nil && ctx.lastResponse.Body != nil {
		ctx.lastResponse.Body.Close()
	}
	ctx.lastResponse = nil
	ctx.lastBody = nil
	if ctx.server != nil {
		ctx.server.Close()
		ctx.server = nil
	}
}

// theAPIServerIsRunning starts a fresh in-memory server with the demo seed
// and simulated delays disabled.
func (ctx *bddTestContext) theAPIServerIsRunning() error {
	st := store.New()
	st.Seed(time.Now().UTC())
	svc := service.New(st, service.NoLatency())
	h := handlers.New(svc, auth.NewSessionProvider(""), zerolog.Nop())
	r := mux.NewRouter()
	h.Routes(r)
	ctx.server = httptest.NewServer(r)
	return nil
}

func (ctx *bddTestContext) iSendAGETRequestTo(path string) error {
	return ctx.iSendARequestTo("GET", path, "")
}

func (ctx *bddTestContext) iSendAPOSTRequestToWithJSON(path string, body *godog.DocString) error {
	return ctx.iSendARequestTo("POST", path, body.Content)
}

func (ctx *bddTestContext) iSendAPUTRequestToWithJSON(path string, body *godog.DocString) error {
	return ctx.iSendARequestTo("PUT", path, body.Content)
}

func (ctx *bddTestContext) iSendADELETERequestTo(path string) error {
	return ctx.iSendARequestTo("DELETE", path, "")
}

func (ctx *bddTestContext) iSendARequestTo(method, path, body string) error {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	ctx.lastResponse = resp
	ctx.lastBody, err = io.ReadAll(resp.Body)
	return err
}

func (ctx *bddTestContext) theResponseStatusCodeShouldBe(expectedCode int) error {
	if ctx.lastResponse == nil {
		return fmt.Errorf("no response received")
	}
	if ctx.lastResponse.StatusCode != expectedCode {
		return fmt.Errorf("expected status code %d, got %d. Body: %s",
			expectedCode, ctx.lastResponse.StatusCode, string(ctx.lastBody))
	}
	return nil
}

func (ctx *bddTestContext) theResponseShouldContainJSONWithSetTo(key, value string) error {
	var data map[string]interface{}
	if err := json.Unmarshal(ctx.lastBody, &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w. Body: %s", err, string(ctx.lastBody))
	}
	actualValue, ok := data[key]
	if !ok {
		return fmt.Errorf("key %q not found in response: %s", key, string(ctx.lastBody))
	}
	actualStr := fmt.Sprintf("%v", actualValue)
	if actualStr != value {
		return fmt.Errorf("expected %q to be %q, got %q", key, value, actualStr)
	}
	return nil
}

func (ctx *bddTestContext) theResponseShouldBeAJSONArrayWithItems(count int) error {
	var data []interface{}
	if err := json.Unmarshal(ctx.lastBody, &data); err != nil {
		return fmt.Errorf("failed to parse JSON array: %w. Body: %s", err, string(ctx.lastBody))
	}
	if len(data) != count {
		return fmt.Errorf("expected %d items, got %d", count, len(data))
	}
	return nil
}

func (ctx *bddTestContext) theResponseShouldContainAField(field string) error {
	var data map[string]interface{}
	if err := json.Unmarshal(ctx.lastBody, &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, ok := data[field]; !ok {
		return fmt.Errorf("field %q not found in response: %s", field, string(ctx.lastBody))
	}
	return nil
}

func (ctx *bddTestContext) theResponseShouldContainError(errorMsg string) error {
	if !strings.Contains(string(ctx.lastBody), errorMsg) {
		return fmt.Errorf("expected error message %q not found in response: %s", errorMsg, string(ctx.lastBody))
	}
	return nil
}

func (ctx *bddTestContext) theResponseFieldShouldStartWith(field, prefix string) error {
	var data map[string]interface{}
	if err := json.Unmarshal(ctx.lastBody, &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	s, ok := data[field].(string)
	if !ok {
		return fmt.Errorf("field %q not found or not a string in response: %s", field, string(ctx.lastBody))
	}
	if !strings.HasPrefix(s, prefix) {
		return fmt.Errorf("expected %q to start with %q, got %q", field, prefix, s)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	testCtx := &bddTestContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		testCtx.reset()
		return c, nil
	})
	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		testCtx.reset()
		return c, nil
	})

	ctx.Step(`^the API server is running$`, testCtx.theAPIServerIsRunning)
	ctx.Step(`^I send a GET request to "([^"]*)"$`, testCtx.iSendAGETRequestTo)
	ctx.Step(`^I send a POST request to "([^"]*)" with JSON:$`, testCtx.iSendAPOSTRequestToWithJSON)
	ctx.Step(`^I send a PUT request to "([^"]*)" with JSON:$`, testCtx.iSendAPUTRequestToWithJSON)
	ctx.Step(`^I send a DELETE request to "([^"]*)"$`, testCtx.iSendADELETERequestTo)
	ctx.Step(`^the response status code should be (\d+)$`, testCtx.theResponseStatusCodeShouldBe)
	ctx.Step(`^the response should contain JSON with "([^"]*)" set to "([^"]*)"$`, testCtx.theResponseShouldContainJSONWithSetTo)
	ctx.Step(`^the response should contain JSON with "([^"]*)" set to (.+)$`, testCtx.theResponseShouldContainJSONWithSetTo)
	ctx.Step(`^the response should be a JSON array with (\d+) items$`, testCtx.theResponseShouldBeAJSONArrayWithItems)
	ctx.Step(`^the response should contain a "([^"]*)" field$`, testCtx.theResponseShouldContainAField)
	ctx.Step(`^the response should contain error "([^"]*)"$`, testCtx.theResponseShouldContainError)
	ctx.Step(`^the response "([^"]*)" should start with "([^"]*)"$`, testCtx.theResponseFieldShouldStartWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
