package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitaforge/internal/llm"
	"vitaforge/internal/resume"
	"vitaforge/internal/store"
	"vitaforge/pkg/models"
	"vitaforge/pkg/utils"
)

type stubProvider struct {
	name   string
	models []string
}

func (s *stubProvider) Name() string                  { return s.name }
func (s *stubProvider) Label() string                 { return "Stub " + s.name }
func (s *stubProvider) Transport() llm.TransportStyle { return llm.TransportChat }
func (s *stubProvider) Models() []string              { return s.models }
func (s *stubProvider) Complete(context.Context, string, string, llm.ResponseShape) (string, error) {
	return "", nil
}

type scriptedDispatcher struct {
	response string
	err      error
}

func (d *scriptedDispatcher) Dispatch(context.Context, string, string, string, llm.ResponseShape) (string, error) {
	return d.response, d.err
}

func (d *scriptedDispatcher) DispatchWithRetry(ctx context.Context, p, m, prompt string, shape llm.ResponseShape, _ llm.RetryPolicy) (string, error) {
	return d.Dispatch(ctx, p, m, prompt, shape)
}

func testRegistry(t *testing.T) *llm.Registry {
	t.Helper()
	registry, err := llm.NewRegistry([]llm.Provider{
		&stubProvider{name: "gemini", models: []string{"gemini-2.5-flash", "gemini-2.5-pro"}},
		&stubProvider{name: "openai", models: []string{"gpt-4o-mini"}},
	}, store.NewMemoryStore(), "gemini")
	require.NoError(t, err)
	return registry
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestListProvidersHandler(t *testing.T) {
	rec := doJSON(t, ListProvidersHandler(testRegistry(t)), http.MethodGet, "/api/v1/providers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProvidersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Providers, 2)
	assert.Equal(t, "gemini", resp.Providers[0].ID)
	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-2.5-pro"}, resp.Providers[0].Models)
}

func TestGetActiveProviderHandler(t *testing.T) {
	rec := doJSON(t, GetActiveProviderHandler(testRegistry(t)), http.MethodGet, "/api/v1/providers/active", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ActiveProviderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "gemini", resp.Provider)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
}

func TestSetActiveProviderHandler(t *testing.T) {
	registry := testRegistry(t)

	rec := doJSON(t, SetActiveProviderHandler(registry), http.MethodPut, "/api/v1/providers/active",
		`{"provider":"openai"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ActiveProviderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "openai", resp.Provider)
	assert.Equal(t, "gpt-4o-mini", resp.Model, "omitted model resolves to the provider's first model")
}

func TestSetActiveProviderHandlerUnknownProvider(t *testing.T) {
	rec := doJSON(t, SetActiveProviderHandler(testRegistry(t)), http.MethodPut, "/api/v1/providers/active",
		`{"provider":"no-such"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetActiveProviderHandlerMalformedBody(t *testing.T) {
	rec := doJSON(t, SetActiveProviderHandler(testRegistry(t)), http.MethodPut, "/api/v1/providers/active",
		`{"provider": 42`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func testService(t *testing.T, d resume.Dispatcher) *resume.Service {
	t.Helper()
	return resume.NewService(testRegistry(t), d, llm.NoRetry)
}

func TestParseResumeHandlerValidation(t *testing.T) {
	svc := testService(t, &scriptedDispatcher{})

	rec := doJSON(t, ParseResumeHandler(svc), http.MethodPost, "/api/v1/resume/parse",
		`{"text":"too short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseResumeHandlerSuccess(t *testing.T) {
	svc := testService(t, &scriptedDispatcher{response: `{
		"personalInfo": {"name": "Jane Doe"},
		"experience": [{"jobTitle": "Engineer", "company": "Acme", "description": ["built APIs"]}]
	}`})

	rec := doJSON(t, ParseResumeHandler(svc), http.MethodPost, "/api/v1/resume/parse",
		`{"text":"Jane Doe, Engineer at Acme since 2018, built APIs in Go"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ParseResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "gemini", resp.Provider)
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "exp-1", resp.Resume.Experience[0].ID)
}

func TestParseResumeHandlerUpstreamFailure(t *testing.T) {
	svc := testService(t, &scriptedDispatcher{err: utils.NewTransportStatusError("gemini", 503, "overloaded")})

	rec := doJSON(t, ParseResumeHandler(svc), http.MethodPost, "/api/v1/resume/parse",
		`{"text":"Jane Doe, Engineer at Acme since 2018, built APIs in Go"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "transport", resp.Error)
	assert.Equal(t, "gemini", resp.Provider)
}

func TestImproveResumeHandlerSoftFail(t *testing.T) {
	svc := testService(t, &scriptedDispatcher{err: utils.NewTransportError("gemini", errors.New("timeout"))})

	body, err := json.Marshal(models.ImproveResumeRequest{
		Resume: models.ResumeDocument{
			PersonalInfo: models.PersonalInfo{Name: "Jane Doe"},
			Experience: []models.ExperienceEntry{
				{ID: "exp-1", JobTitle: "Engineer", Description: []string{"built APIs"}},
			},
		},
		Instructions: "make it better",
	})
	require.NoError(t, err)

	rec := doJSON(t, ImproveResumeHandler(svc), http.MethodPost, "/api/v1/resume/improve", string(body))
	require.Equal(t, http.StatusOK, rec.Code, "a failed revision is still a usable response")

	var resp models.ImproveResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Changed)
	assert.NotEmpty(t, resp.Warning)
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "Jane Doe", resp.Resume.PersonalInfo.Name)
	assert.Equal(t, "exp-1", resp.Resume.Experience[0].ID)
}

func TestReviseStylesHandlerFailure(t *testing.T) {
	svc := testService(t, &scriptedDispatcher{response: "not json at all"})

	rec := doJSON(t, ReviseStylesHandler(svc), http.MethodPost, "/api/v1/resume/styles",
		`{"styles":{"header":"bg-white"},"preferences":"dark mode"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "style_generation", resp.Error)
}

func TestReviseStylesHandlerSuccess(t *testing.T) {
	svc := testService(t, &scriptedDispatcher{response: `{"header":"bg-black","bogus":"x"}`})

	rec := doJSON(t, ReviseStylesHandler(svc), http.MethodPost, "/api/v1/resume/styles",
		`{"styles":{"header":"bg-white","container":"mx-auto"},"preferences":"dark mode"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReviseStylesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bg-black", resp.Styles["header"])
	assert.Equal(t, "mx-auto", resp.Styles["container"])
	_, hasBogus := resp.Styles["bogus"]
	assert.False(t, hasBogus)
}
