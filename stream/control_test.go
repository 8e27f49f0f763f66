package stream

import "testing"

func TestControlPayloads(t *testing.T) {
	requests := make(chan Request, 1)
	c := NewControl(testConfig(), nil, requests)

	if err := c.handlePayload([]byte(`{"type":"face","name":"wide"}`)); err != nil {
		t.Fatalf("handlePayload(face) error = %v", err)
	}
	if got := <-requests; got != (Request{Face: "wide"}) {
		t.Fatalf("request = %+v, want face wide", got)
	}

	if err := c.handlePayload([]byte(`{"type":"next"}`)); err != nil {
		t.Fatalf("handlePayload(next) error = %v", err)
	}
	if got := <-requests; !got.Next {
		t.Fatalf("request = %+v, want next", got)
	}
}

func TestControlRejects(t *testing.T) {
	requests := make(chan Request, 1)
	c := NewControl(testConfig(), nil, requests)

	for _, payload := range []string{`{`, `{"type":"spin"}`, `{"type":"face"}`} {
		if err := c.handlePayload([]byte(payload)); err == nil {
			t.Errorf("handlePayload(%s) error = nil", payload)
		}
	}

	requests <- Request{Next: true}
	if err := c.handlePayload([]byte(`{"type":"next"}`)); err == nil {
		t.Error("handlePayload() on a full queue error = nil")
	}
}
