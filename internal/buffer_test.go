package internal

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestBufferPool_Basic(t *testing.T) {
	pool := NewBufferPool(1024)

	buf := pool.Get()
	if buf == nil {
		t.Fatal("Expected buffer from pool, got nil")
	}

	if buf.Cap() < 1024 {
		t.Errorf("Expected buffer capacity of at least 1024, got %d", buf.Cap())
	}

	buf.WriteString("test data")
	if buf.String() != "test data" {
		t.Errorf("Expected 'test data', got '%s'", buf.String())
	}

	pool.Put(buf)

	buf2 := pool.Get()
	if buf2.Len() != 0 {
		t.Errorf("Expected empty buffer after reset, got length %d", buf2.Len())
	}

	pool.Put(buf2)
}

func TestBufferPool_DefaultCapacity(t *testing.T) {
	pool := NewBufferPool(0)

	if got := pool.Get().Cap(); got != 2048 {
		t.Errorf("Expected default capacity 2048, got %d", got)
	}
}

func TestBufferPool_DropsOversizedBuffers(t *testing.T) {
	pool := NewBufferPool(16)

	big := bytes.NewBuffer(make([]byte, 0, 16*65))
	big.WriteString("oversized")
	pool.Put(big)

	// Whatever comes back next must be empty; an oversized buffer is never
	// reset and pooled.
	if got := pool.Get(); got.Len() != 0 {
		t.Errorf("Expected empty buffer, got %q", got.String())
	}

	pool.Put(nil)
}

func TestBufferPool_GetBytes(t *testing.T) {
	pool := NewBufferPool(512)

	result, err := pool.GetBytes(func(buf *bytes.Buffer) error {
		buf.WriteString("hello")
		buf.WriteString(" ")
		buf.WriteString("world")
		return nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if string(result) != "hello world" {
		t.Errorf("Expected 'hello world', got '%s'", string(result))
	}
}

func TestBufferPool_GetBytesError(t *testing.T) {
	pool := NewBufferPool(512)
	boom := errors.New("boom")

	result, err := pool.GetBytes(func(buf *bytes.Buffer) error {
		buf.WriteString("partial")
		return boom
	})

	if !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil result, got %q", result)
	}
}

func TestBufferPool_Concurrent(t *testing.T) {
	pool := NewBufferPool(64)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := pool.GetBytes(func(buf *bytes.Buffer) error {
				buf.WriteString(strings.Repeat("x", 10))
				return nil
			})
			if err != nil || len(out) != 10 {
				t.Errorf("Expected 10 bytes, got %d (%v)", len(out), err)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkBufferPool_GetBytes(b *testing.B) {
	pool := NewBufferPool(1024)
	payload := []byte(`{"format":"yyyy/MM/dd","date":"2020-06-20T21:05:09Z"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pool.GetBytes(func(buf *bytes.Buffer) error {
			_, err := buf.Write(payload)
			return err
		})
	}
}
