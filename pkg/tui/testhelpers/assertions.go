package testhelpers

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pluqqy/testimonials/pkg/models"
)

// AssertTestimonialEqual compares every field of two records
func AssertTestimonialEqual(t *testing.T, expected, actual models.Testimonial) {
	t.Helper()

	for _, f := range models.Fields {
		if expected.Get(f) != actual.Get(f) {
			t.Errorf("Testimonial %s mismatch: expected %q, got %q", f, expected.Get(f), actual.Get(f))
		}
	}
}

// AssertAuthors checks the collection's authors in order
func AssertAuthors(t *testing.T, c models.Collection, authors ...string) {
	t.Helper()

	got := make([]string, len(c))
	for i, r := range c {
		got[i] = r.Author
	}
	AssertSliceEqual(t, authors, got)
}

// AssertViewContains checks if a view contains expected text
func AssertViewContains(t *testing.T, view, expected string) {
	t.Helper()

	if !strings.Contains(view, expected) {
		t.Errorf("View does not contain expected text: %q\nView:\n%s", expected, view)
	}
}

// AssertViewNotContains checks if a view does not contain certain text
func AssertViewNotContains(t *testing.T, view, unexpected string) {
	t.Helper()

	if strings.Contains(view, unexpected) {
		t.Errorf("View unexpectedly contains text: %q\nView:\n%s", unexpected, view)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected error, but got nil")
	}
}

// AssertEqual checks if two values are equal
func AssertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue checks that a condition is true
func AssertTrue(t *testing.T, condition bool, message string) {
	t.Helper()

	if !condition {
		t.Errorf("Expected true: %s", message)
	}
}

// AssertFalse checks that a condition is false
func AssertFalse(t *testing.T, condition bool, message string) {
	t.Helper()

	if condition {
		t.Errorf("Expected false: %s", message)
	}
}

// AssertSliceEqual checks if two slices are equal
func AssertSliceEqual[T comparable](t *testing.T, expected, actual []T) {
	t.Helper()

	if len(expected) != len(actual) {
		t.Errorf("Slice length mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Slice element %d mismatch: expected %v, got %v", i, expected[i], actual[i])
		}
	}
}

// WaitForCondition waits for a condition with timeout
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Condition not met within timeout: %s", msg)
}
