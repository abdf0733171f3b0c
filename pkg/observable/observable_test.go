package observable

import (
	"testing"
)

func TestGetSet(t *testing.T) {
	o := New(1)
	if got := o.Get(); got != 1 {
		t.Errorf("Get() = %d, want 1", got)
	}

	o.Set(2)
	if got := o.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
}

func TestSubscribe_NotifiesInOrder(t *testing.T) {
	o := New(0)

	var calls []string
	o.Subscribe(func(v int) { calls = append(calls, "a") })
	o.Subscribe(func(v int) { calls = append(calls, "b") })
	o.Subscribe(func(v int) { calls = append(calls, "c") })

	o.Set(1)

	want := []string{"a", "b", "c"}
	if len(calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestUnsubscribe_StopsNotifications(t *testing.T) {
	o := New(0)

	count := 0
	unsub := o.Subscribe(func(v int) { count++ })

	o.Set(1)
	unsub()
	o.Set(2)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	// Idempotent: a second call must not panic or affect other subscribers.
	unsub()
}

func TestUnsubscribe_SelfFromWithinCallback(t *testing.T) {
	o := New(0)

	var calls []string
	var unsubB func()
	o.Subscribe(func(v int) { calls = append(calls, "a") })
	unsubB = o.Subscribe(func(v int) {
		calls = append(calls, "b")
		unsubB()
	})
	o.Subscribe(func(v int) { calls = append(calls, "c") })

	o.Set(1)
	o.Set(2)

	// b fires once, a and c fire on both transitions, order preserved.
	want := []string{"a", "b", "c", "a", "c"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestUnsubscribe_LaterSubscriberFromWithinCallback(t *testing.T) {
	o := New(0)

	var calls []string
	var unsubC func()
	o.Subscribe(func(v int) {
		calls = append(calls, "a")
		if unsubC != nil {
			unsubC()
		}
	})
	o.Subscribe(func(v int) { calls = append(calls, "b") })
	unsubC = o.Subscribe(func(v int) { calls = append(calls, "c") })

	o.Set(1)

	// c was removed by a before the notification reached it; b still fires.
	want := []string{"a", "b"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestSubscribe_ReceivesCurrentValueOnNextSet(t *testing.T) {
	o := New("initial")

	var got string
	o.Subscribe(func(v string) { got = v })

	// Subscribing alone does not invoke the callback.
	if got != "" {
		t.Errorf("callback invoked on subscribe with %q", got)
	}

	o.Set("updated")
	if got != "updated" {
		t.Errorf("got %q, want updated", got)
	}
}
