package internal_test

import (
	"testing"
	"time"

	"github.com/valyala/fasthttp"

	"yoth.dev/onekit-go/internal"
)

func TestWithHttpClient(t *testing.T) {
	customClient := &fasthttp.Client{
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	instance := internal.NewHttpInstance(internal.WithHttpClient(customClient))
	defer instance.Close()

	if instance.HttpClient != customClient {
		t.Error("Expected custom HttpClient to be set")
	}

	if instance.HttpClient.ReadTimeout != 15*time.Second {
		t.Errorf("Expected ReadTimeout 15s, got %v", instance.HttpClient.ReadTimeout)
	}
}

func TestWithHttpClient_Nil(t *testing.T) {
	instance := internal.NewHttpInstance(internal.WithHttpClient(nil))
	defer instance.Close()

	if instance.HttpClient == nil {
		t.Error("Expected the default client to be kept")
	}
}

func TestWithWorkerPoolSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"small pool", 10, 10},
		{"large pool", 200, 200},
		{"single worker", 1, 1},
		{"zero is ignored", 0, 100},
		{"negative is ignored", -3, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instance := internal.NewHttpInstance(internal.WithWorkerPoolSize(tt.size))
			defer instance.Close()

			if got := instance.GetWorkerPoolStats().MaxWorkers; got != tt.want {
				t.Errorf("Expected %d workers, got %d", tt.want, got)
			}
		})
	}
}

func TestWithBaseEndpointPath(t *testing.T) {
	for _, basePath := range []string{"/custom/api", "/v1", "/", "/api/v2/", ""} {
		t.Run(basePath, func(t *testing.T) {
			instance := internal.NewHttpInstance(internal.WithBaseEndpointPath(basePath))
			defer instance.Close()

			if instance.GetBaseEndpointPath() != basePath {
				t.Errorf("Expected base endpoint path '%s', got '%s'", basePath, instance.GetBaseEndpointPath())
			}
		})
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	instance := internal.NewHttpInstance(
		internal.WithBaseURL("http://first:1"),
		internal.WithWorkerPoolSize(5),
		internal.WithBaseURL("http://second:2"),
		internal.WithWorkerPoolSize(9),
	)
	defer instance.Close()

	if instance.GetBaseURL() != "http://second:2" {
		t.Errorf("Expected last base URL to win, got '%s'", instance.GetBaseURL())
	}
	if got := instance.GetWorkerPoolStats().MaxWorkers; got != 9 {
		t.Errorf("Expected last pool size to win, got %d", got)
	}
}
