package httpapi

import "testing"

func TestSetMaxBodyBytes_DefaultWhenNonPositive(t *testing.T) {
	SetMaxBodyBytes(-1)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(0)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB on zero, got %d", maxBodyBytes)
	}
}

func TestSetMaxBodyBytes_PositiveSetsValue(t *testing.T) {
	SetMaxBodyBytes(1234)
	defer SetMaxBodyBytes(0)
	if maxBodyBytes != 1234 {
		t.Fatalf("expected 1234, got %d", maxBodyBytes)
	}
}

func TestSetDefaultAccelerator_EmptyRestoresGPU(t *testing.T) {
	SetDefaultAccelerator("cpu")
	if defaultAccelerator != "cpu" {
		t.Fatalf("expected cpu, got %q", defaultAccelerator)
	}
	SetDefaultAccelerator("")
	if defaultAccelerator != "gpu" {
		t.Fatalf("expected gpu, got %q", defaultAccelerator)
	}
}

func TestSetCORSOptions_CopiesSlices(t *testing.T) {
	origins := []string{"a"}
	SetCORSOptions(true, origins, nil, nil)
	defer SetCORSOptions(false, nil, nil, nil)
	origins[0] = "b"
	if !corsEnabled || corsAllowedOrigins[0] != "a" {
		t.Fatalf("unexpected cors state: %v %v", corsEnabled, corsAllowedOrigins)
	}
}
