package redis

import (
	"testing"
	"time"

	"bbq-enquiry/internal/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, timeout time.Duration) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSessionStore(client, timeout), mr
}

// TestSessionRoundTrip tests storing and retrieving a context through Redis
func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)

	context := domain.NewSessionContext("s1", domain.StateBookingCollection)
	context.City = "Delhi"
	context.SetBookingDetail(domain.BookingFieldName, "Asha Rao")
	if err := store.UpdateSession(&context); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a stored context")
	}
	if got.City != "Delhi" || got.CurrentState != domain.StateBookingCollection {
		t.Errorf("Unexpected context: %+v", got)
	}
	if got.BookingDetails[domain.BookingFieldName] != "Asha Rao" {
		t.Errorf("Unexpected booking details: %v", got.BookingDetails)
	}
}

// TestGetSessionUnknownReturnsNil tests the miss path
func TestGetSessionUnknownReturnsNil(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)

	got, err := store.GetSession("missing")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for an unknown session, got %+v", got)
	}
}

// TestUpdateSessionSetsTTL tests that the idle timeout lands on the key
func TestUpdateSessionSetsTTL(t *testing.T) {
	store, mr := newTestStore(t, 30*time.Minute)

	context := domain.NewSessionContext("s1", domain.StateCitySelection)
	if err := store.UpdateSession(&context); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ttl := mr.TTL("session:s1")
	if ttl != 30*time.Minute {
		t.Errorf("Expected TTL of 30m, got %v", ttl)
	}
}

// TestExpiredSessionGone tests that expiry is enforced by the key TTL
func TestExpiredSessionGone(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)

	context := domain.NewSessionContext("s1", domain.StateCitySelection)
	if err := store.UpdateSession(&context); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Expected expired session to be gone, got %+v", got)
	}
}

// TestMalformedPayloadDropped tests that an unreadable payload is deleted
// and treated as a fresh session
func TestMalformedPayloadDropped(t *testing.T) {
	store, mr := newTestStore(t, 30*time.Minute)

	mr.Set("session:s1", "{not json")

	got, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for a malformed payload, got %+v", got)
	}
	if mr.Exists("session:s1") {
		t.Error("Expected the malformed key to be deleted")
	}
}

// TestDeleteSessionIdempotent tests that deleting twice is not an error
func TestDeleteSessionIdempotent(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)

	context := domain.NewSessionContext("s1", domain.StateCitySelection)
	if err := store.UpdateSession(&context); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := store.DeleteSession("s1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := store.DeleteSession("s1"); err != nil {
		t.Fatalf("Expected idempotent delete, got %v", err)
	}
}
