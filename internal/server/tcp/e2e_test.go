package tcp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edtechlab/coursehub/internal/client"
)

func startServer(t *testing.T) string {
	t.Helper()

	srv := NewServer("127.0.0.1:0", 2*time.Second, setupDispatcher(t), nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not shut down")
		}
	})

	deadline := time.Now().Add(2 * time.Second)
	for srv.Addr() == nil {
		if time.Now().After(deadline) {
			t.Fatal("server never started listening")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return srv.Addr().String()
}

func TestEndToEnd_FullScenario(t *testing.T) {
	addr := startServer(t)
	ctx := context.Background()

	send := func(request string) string {
		t.Helper()
		resp, err := client.Do(ctx, addr, request)
		require.NoError(t, err, request)
		return resp
	}

	assert.Equal(t, "Registration Successful", send("REGISTER instructor alice pw"))
	assert.Equal(t, "Login successful instructor", send("LOGIN alice pw"))
	assert.Equal(t, "Resource Added Successfully", send("UPLOAD_RESOURCE CS101 http://x alice"))
	assert.Equal(t, "CS101", send("GET_COURSES"))
	assert.Equal(t, "http://x", send("GET_RESOURCES CS101"))
	assert.Equal(t, "Successfully subscribed to course CS101", send("SUBSCRIBE alice CS101"))
	assert.Equal(t, "No new resources", send("GET_NEW_RESOURCES alice CS101"))
	assert.Equal(t, "Resource Added Successfully", send("UPLOAD_RESOURCE CS101 http://y alice"))
	assert.Equal(t, "http://y", send("GET_NEW_RESOURCES alice CS101"))
	assert.Equal(t, "No new resources", send("GET_NEW_RESOURCES alice CS101"))
}

func TestEndToEnd_UnknownVerbAndShortRequest(t *testing.T) {
	addr := startServer(t)
	ctx := context.Background()

	resp, err := client.Do(ctx, addr, "DANCE")
	require.NoError(t, err)
	assert.Equal(t, "Invalid request!", resp)

	resp, err = client.Do(ctx, addr, "LOGIN alice")
	require.NoError(t, err)
	assert.Equal(t, "Error: malformed request", resp)
}

func TestEndToEnd_ConcurrentConnections(t *testing.T) {
	addr := startServer(t)
	ctx := context.Background()

	_, err := client.Do(ctx, addr, "UPLOAD_RESOURCE CS101 http://a alice")
	require.NoError(t, err)

	const n = 16
	var wg sync.WaitGroup
	responses := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i], errs[i] = client.Do(ctx, addr, "SUBSCRIBE bob CS101")
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i], "connection %d", i)
		assert.Equal(t, "Successfully subscribed to course CS101", responses[i])
	}

	resp, err := client.Do(ctx, addr, "GET_SUBSCRIBED_COURSES bob")
	require.NoError(t, err)
	assert.Equal(t, "CS101", resp, "concurrent subscribes must collapse to one row")
}
