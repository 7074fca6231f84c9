package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(nil)

	var got []string
	d.Subscribe(EventDatasetLoaded, func(ctx context.Context, e Event) error {
		got = append(got, "first:"+e.DatasetID)
		return nil
	})
	d.Subscribe(EventDatasetLoaded, func(ctx context.Context, e Event) error {
		got = append(got, "second:"+e.DatasetID)
		return nil
	})
	d.Subscribe(EventCriticalBacklog, func(ctx context.Context, e Event) error {
		got = append(got, "wrong-type")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventDatasetLoaded, DatasetID: "ds-1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	want := []string{"first:ds-1", "second:ds-1"}
	if len(got) != len(want) {
		t.Fatalf("deliveries = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("deliveries = %v, want %v", got, want)
		}
	}
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher(nil)

	delivered := false
	d.Subscribe(EventDatasetLoaded, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventDatasetLoaded, func(ctx context.Context, e Event) error {
		delivered = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventDatasetLoaded}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !delivered {
		t.Error("second handler not invoked after first failed")
	}
}
