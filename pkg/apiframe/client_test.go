package apiframe_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	// Packages
	af "github.com/mutablelogic/go-apiframe"
	apiframe "github.com/mutablelogic/go-apiframe/pkg/apiframe"
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	zerolog "github.com/rs/zerolog"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

var (
	apiKey string
)

func TestMain(m *testing.M) {
	// API KEY
	apiKey = os.Getenv("APIFRAME_API_KEY")
	os.Exit(m.Run())
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// request is what the test server received
type request struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          map[string]any
}

// testServer records the last request and replies with a fixed body
type testServer struct {
	*httptest.Server
	sync.Mutex
	last request
}

func newTestServer(t *testing.T, status int, body string) *testServer {
	t.Helper()
	srv := new(testServer)
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.Lock()
		defer srv.Unlock()
		srv.last = request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
		}
		if data, err := io.ReadAll(r.Body); err == nil && len(data) > 0 {
			json.Unmarshal(data, &srv.last.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func (srv *testServer) Last() request {
	srv.Lock()
	defer srv.Unlock()
	return srv.last
}

func newClient(t *testing.T, url string, opts ...apiframe.Opt) *apiframe.Client {
	t.Helper()
	opts = append([]apiframe.Opt{
		apiframe.WithEndpoint(url),
		apiframe.WithLogger(zerolog.Nop()),
	}, opts...)
	c, err := apiframe.New("test-key", opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// operation calls one client method with the given webhook
type operation struct {
	name    string
	method  string
	path    string
	webhook bool
	call    func(context.Context, schema.Webhook) (*schema.Response, error)
	body    map[string]any
}

// operations returns every client operation with its expected request body
func operations(c *apiframe.Client) []operation {
	return []operation{
		{"imagine", http.MethodPost, "/imagine", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Imagine(ctx, schema.ImagineRequest{Prompt: "a cat", Webhook: w})
		}, map[string]any{"prompt": "a cat", "aspect_ratio": "1:1", "process_mode": "fast"}},
		{"upscale-1x", http.MethodPost, "/upscale-1x", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Upscale1x(ctx, schema.Upscale1xRequest{ParentTaskId: "p", Index: "1", Webhook: w})
		}, map[string]any{"parent_task_id": "p", "index": "1"}},
		{"upscale-alt", http.MethodPost, "/upscale-alt", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.UpscaleAlt(ctx, schema.UpscaleAltRequest{ParentTaskId: "p", Type: schema.UpscaleSubtle, Webhook: w})
		}, map[string]any{"parent_task_id": "p", "type": "subtle"}},
		{"upscale-highres", http.MethodPost, "/upscale-highres", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.UpscaleHighres(ctx, schema.UpscaleHighresRequest{ParentTaskId: "p", Type: schema.Upscale2x, Webhook: w})
		}, map[string]any{"parent_task_id": "p", "type": "2x"}},
		{"reroll", http.MethodPost, "/reroll", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Reroll(ctx, schema.RerollRequest{ParentTaskId: "p", Webhook: w})
		}, map[string]any{"parent_task_id": "p", "aspect_ratio": "1:1"}},
		{"variations", http.MethodPost, "/variations", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Variations(ctx, schema.VariationsRequest{ParentTaskId: "p", Index: "strong", Prompt: "a dog", Webhook: w})
		}, map[string]any{"parent_task_id": "p", "index": "strong", "prompt": "a dog", "aspect_ratio": "1:1"}},
		{"inpaint", http.MethodPost, "/inpaint", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Inpaint(ctx, schema.InpaintRequest{ParentTaskId: "p", Mask: "bWFzaw==", Webhook: w})
		}, map[string]any{"parent_task_id": "p", "mask": "bWFzaw=="}},
		{"outpaint", http.MethodPost, "/outpaint", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Outpaint(ctx, schema.OutpaintRequest{ParentTaskId: "p", ZoomRatio: "1.5", Webhook: w})
		}, map[string]any{"parent_task_id": "p", "zoom_ratio": "1.5", "aspect_ratio": "1:1"}},
		{"pan", http.MethodPost, "/pan", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Pan(ctx, schema.PanRequest{ParentTaskId: "p", Direction: schema.DirectionUp, Webhook: w})
		}, map[string]any{"parent_task_id": "p", "direction": "up"}},
		{"describe", http.MethodPost, "/describe", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Describe(ctx, schema.DescribeRequest{ImageUrl: "https://example.com/a.png", Webhook: w})
		}, map[string]any{"image_url": "https://example.com/a.png", "process_mode": "fast"}},
		{"blend", http.MethodPost, "/blend", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Blend(ctx, schema.BlendRequest{ImageUrls: []string{"u1", "u2"}, Dimension: schema.DimensionPortrait, Webhook: w})
		}, map[string]any{"image_urls": []any{"u1", "u2"}, "dimension": "portrait", "process_mode": "fast"}},
		{"seed", http.MethodPost, "/seed", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Seed(ctx, schema.SeedRequest{TaskId: "t", Webhook: w})
		}, map[string]any{"task_id": "t"}},
		{"faceswap", http.MethodPost, "/faceswap", true, func(ctx context.Context, w schema.Webhook) (*schema.Response, error) {
			return c.Faceswap(ctx, schema.FaceswapRequest{TargetImageUrl: "u1", SwapImageUrl: "u2", Webhook: w})
		}, map[string]any{"target_image_url": "u1", "swap_image_url": "u2"}},
		{"fetch", http.MethodPost, "/fetch", false, func(ctx context.Context, _ schema.Webhook) (*schema.Response, error) {
			return c.Fetch(ctx, schema.FetchRequest{TaskId: "t"})
		}, map[string]any{"task_id": "t"}},
		{"fetch-many", http.MethodPost, "/fetch-many", false, func(ctx context.Context, _ schema.Webhook) (*schema.Response, error) {
			return c.FetchMany(ctx, schema.FetchManyRequest{TaskIds: []string{"a", "b"}})
		}, map[string]any{"task_ids": []any{"a", "b"}}},
		{"account", http.MethodGet, "/account", false, func(ctx context.Context, _ schema.Webhook) (*schema.Response, error) {
			return c.Account(ctx)
		}, nil},
	}
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	// Test that creating a client with an empty API key fails
	assert := assert.New(t)
	c, err := apiframe.New("")
	assert.ErrorIs(err, af.ErrBadParameter)
	assert.Nil(c)
}

func Test_client_002(t *testing.T) {
	// Test that an empty endpoint is rejected
	assert := assert.New(t)
	c, err := apiframe.New("test-key", apiframe.WithEndpoint(""))
	assert.ErrorIs(err, af.ErrBadParameter)
	assert.Nil(c)
}

func Test_client_003(t *testing.T) {
	// Imagine posts the prompt with the given options and no webhook fields
	assert := assert.New(t)
	srv := newTestServer(t, http.StatusOK, `{"task_id":"abc"}`)
	c := newClient(t, srv.URL)

	response, err := c.Imagine(context.Background(), schema.ImagineRequest{
		Prompt:      "a cat",
		AspectRatio: "16:9",
		ProcessMode: "fast",
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.JSONEq(`{"task_id":"abc"}`, string(response.Bytes()))

	last := srv.Last()
	assert.Equal(http.MethodPost, last.Method)
	assert.Equal("/imagine", last.Path)
	assert.Equal("test-key", last.Authorization)
	assert.True(strings.HasPrefix(last.ContentType, "application/json"))
	assert.Equal(map[string]any{
		"prompt":       "a cat",
		"aspect_ratio": "16:9",
		"process_mode": "fast",
	}, last.Body)
}

func Test_client_004(t *testing.T) {
	// Imagine fills in defaults for options which are not set
	assert := assert.New(t)
	srv := newTestServer(t, http.StatusOK, `{"task_id":"abc"}`)
	c := newClient(t, srv.URL)

	_, err := c.Imagine(context.Background(), schema.ImagineRequest{
		Prompt: "a cat",
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(map[string]any{
		"prompt":       "a cat",
		"aspect_ratio": schema.DefaultAspectRatio,
		"process_mode": schema.DefaultProcessMode,
	}, srv.Last().Body)
}

func Test_client_005(t *testing.T) {
	// Webhook fields are sent when set
	assert := assert.New(t)
	srv := newTestServer(t, http.StatusOK, `{"task_id":"abc"}`)
	c := newClient(t, srv.URL)

	_, err := c.Seed(context.Background(), schema.SeedRequest{
		TaskId: "t1",
		Webhook: schema.Webhook{
			WebhookUrl:    "https://example.com/hook",
			WebhookSecret: "s3cret",
		},
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(map[string]any{
		"task_id":        "t1",
		"webhook_url":    "https://example.com/hook",
		"webhook_secret": "s3cret",
	}, srv.Last().Body)
}

func Test_client_006(t *testing.T) {
	// FetchMany posts the task identifiers and returns the array as received
	assert := assert.New(t)
	srv := newTestServer(t, http.StatusOK, `[{"task_id":"a","status":"finished"},{"task_id":"b","status":"pending"}]`)
	c := newClient(t, srv.URL)

	response, err := c.FetchMany(context.Background(), schema.FetchManyRequest{
		TaskIds: []string{"a", "b"},
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.True(response.IsArray())

	last := srv.Last()
	assert.Equal(http.MethodPost, last.Method)
	assert.Equal("/fetch-many", last.Path)
	assert.Equal(map[string]any{
		"task_ids": []any{"a", "b"},
	}, last.Body)

	tasks, err := response.Tasks()
	assert.NoError(err)
	assert.Len(tasks, 2)
	assert.True(tasks[0].Finished())
	assert.False(tasks[1].Finished())
}

func Test_client_007(t *testing.T) {
	// Account is a GET with the key in the Authorization header
	assert := assert.New(t)
	srv := newTestServer(t, http.StatusOK, `{"email":"a@example.com","credits":100,"plan":"basic","next_billing_date":null,"total_images":3}`)
	c := newClient(t, srv.URL)

	response, err := c.Account(context.Background())
	if !assert.NoError(err) {
		t.FailNow()
	}

	last := srv.Last()
	assert.Equal(http.MethodGet, last.Method)
	assert.Equal("/account", last.Path)
	assert.Equal("test-key", last.Authorization)
	assert.Nil(last.Body)

	account, err := response.Account()
	assert.NoError(err)
	assert.Equal("a@example.com", account.Email)
	assert.Equal(100, account.Credits)
	assert.Nil(account.NextBillingDate)
}

func Test_client_008(t *testing.T) {
	// Each operation sends its required fields to its own path, and the
	// webhook fields verbatim when set
	srv := newTestServer(t, http.StatusOK, `{"task_id":"abc"}`)
	c := newClient(t, srv.URL)
	webhook := schema.Webhook{
		WebhookUrl:    "https://example.com/hook",
		WebhookSecret: "s3cret",
	}

	for _, op := range operations(c) {
		t.Run(op.name, func(t *testing.T) {
			assert := assert.New(t)
			response, err := op.call(context.Background(), schema.Webhook{})
			if !assert.NoError(err) {
				return
			}
			assert.NotNil(response)
			last := srv.Last()
			assert.Equal(op.method, last.Method)
			assert.Equal(op.path, last.Path)
			assert.Equal("test-key", last.Authorization)
			assert.Equal(op.body, last.Body)
		})
		if !op.webhook {
			continue
		}
		t.Run(op.name+"/webhook", func(t *testing.T) {
			assert := assert.New(t)
			_, err := op.call(context.Background(), webhook)
			if !assert.NoError(err) {
				return
			}
			body := map[string]any{
				"webhook_url":    webhook.WebhookUrl,
				"webhook_secret": webhook.WebhookSecret,
			}
			for k, v := range op.body {
				body[k] = v
			}
			assert.Equal(body, srv.Last().Body)
		})
	}
}

func Test_client_009(t *testing.T) {
	// Every operation fails without a response when the server is not listening
	srv := newTestServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()
	c := newClient(t, url)

	for _, op := range operations(c) {
		t.Run(op.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.NotPanics(func() {
				response, err := op.call(context.Background(), schema.Webhook{})
				assert.ErrorIs(err, af.ErrTransport)
				assert.Nil(response)
			})
		})
	}
}

func Test_client_010(t *testing.T) {
	// An error status with a JSON body is returned as the response
	assert := assert.New(t)
	srv := newTestServer(t, http.StatusBadRequest, `{"errors":[{"msg":"Invalid index"}]}`)

	var buf bytes.Buffer
	c := newClient(t, srv.URL, apiframe.WithLogger(zerolog.New(&buf)))
	response, err := c.Upscale1x(context.Background(), schema.Upscale1xRequest{ParentTaskId: "p", Index: "9"})
	if !assert.NoError(err) || !assert.NotNil(response) {
		t.FailNow()
	}
	assert.JSONEq(`{"errors":[{"msg":"Invalid index"}]}`, string(response.Bytes()))

	task, err := response.Task()
	if assert.NoError(err) && assert.Len(task.Errors, 1) {
		assert.Equal("Invalid index", task.Errors[0].Msg)
	}
	assert.Contains(buf.String(), `"level":"warn"`)
	assert.Contains(buf.String(), `"status":400`)
}

func Test_client_011(t *testing.T) {
	// A body which is not JSON fails without a response, whatever the status
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"ok", http.StatusOK, `not json`},
		{"error", http.StatusInternalServerError, `<html>bad gateway</html>`},
		{"empty", http.StatusBadGateway, ``},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			srv := newTestServer(t, test.status, test.body)
			c := newClient(t, srv.URL)

			response, err := c.Fetch(context.Background(), schema.FetchRequest{TaskId: "t"})
			assert.ErrorIs(err, af.ErrDecode)
			assert.Nil(response)
		})
	}
}

func Test_client_012(t *testing.T) {
	// Verbose mode logs the response, failures are always logged
	assert := assert.New(t)
	srv := newTestServer(t, http.StatusOK, `{"task_id":"abc"}`)

	var buf bytes.Buffer
	c := newClient(t, srv.URL, apiframe.WithLogger(zerolog.New(&buf)), apiframe.WithVerbose(true))
	_, err := c.Seed(context.Background(), schema.SeedRequest{TaskId: "t"})
	assert.NoError(err)
	assert.Contains(buf.String(), `"path":"seed"`)
	assert.Contains(buf.String(), `"task_id":"abc"`)
	assert.Contains(buf.String(), `"component":"apiframe"`)

	buf.Reset()
	srv.Close()
	_, err = c.Seed(context.Background(), schema.SeedRequest{TaskId: "t"})
	assert.Error(err)
	assert.Contains(buf.String(), `"level":"error"`)
	assert.Contains(buf.String(), "request failed")
}

func Test_client_013(t *testing.T) {
	// Get the account details from the live service
	if apiKey == "" {
		t.Skip("APIFRAME_API_KEY not set, skipping")
	}
	assert := assert.New(t)
	c, err := apiframe.New(apiKey, apiframe.WithLogger(zerolog.Nop()))
	if !assert.NoError(err) {
		t.FailNow()
	}
	response, err := c.Account(context.Background())
	if !assert.NoError(err) {
		t.FailNow()
	}
	account, err := response.Account()
	assert.NoError(err)
	assert.NotEmpty(account.Email)
	t.Log(account)
}
