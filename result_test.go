package hxtable

import (
	"errors"
	"net/http"
	"testing"
)

type testResultProps struct {
	ID   int
	Name string
}

func TestResultOK(t *testing.T) {
	r := OK(testResultProps{ID: 1, Name: "test"})

	if r.GetProps().ID != 1 {
		t.Errorf("GetProps().ID = %d, want %d", r.GetProps().ID, 1)
	}
	if r.GetErr() != nil {
		t.Errorf("GetErr() = %v, want nil", r.GetErr())
	}
	if r.GetStatus() != 0 {
		t.Errorf("GetStatus() = %d, want 0", r.GetStatus())
	}
	if r.triggerHeader() != "" {
		t.Errorf("triggerHeader() = %q, want empty", r.triggerHeader())
	}
}

func TestResultErr(t *testing.T) {
	testErr := errors.New("test error")
	r := Err(testResultProps{ID: 1}, testErr)

	if r.GetErr() != testErr {
		t.Errorf("GetErr() = %v, want %v", r.GetErr(), testErr)
	}
	if r.GetProps().ID != 1 {
		t.Errorf("GetProps().ID = %d, want %d", r.GetProps().ID, 1)
	}
}

func TestResultTrigger(t *testing.T) {
	tests := []struct {
		name   string
		result Result[testResultProps]
		want   string
	}{
		{
			name:   "bare event",
			result: OK(testResultProps{}).Trigger("hxtable:page"),
			want:   "hxtable:page",
		},
		{
			name:   "event with data",
			result: OK(testResultProps{}).Trigger("hxtable:search", map[string]any{"query": "jane"}),
			want:   `{"hxtable:search":{"query":"jane"}}`,
		},
		{
			name: "several events",
			result: OK(testResultProps{}).
				Trigger("hxtable:search", map[string]any{"query": "j"}).
				Trigger("hxtable:page"),
			want: `{"hxtable:page":true,"hxtable:search":{"query":"j"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.triggerHeader(); got != tt.want {
				t.Errorf("triggerHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultIsImmutable(t *testing.T) {
	base := OK(testResultProps{}).Trigger("a").Header("X-One", "1")
	_ = base.Trigger("b").Header("X-Two", "2")

	if events := base.GetEvents(); len(events) != 1 || events[0] != "a" {
		t.Errorf("GetEvents() = %v, want [a]", events)
	}
	if _, ok := base.GetHeaders()["X-Two"]; ok {
		t.Error("Header on a copy leaked into the original")
	}
}

func TestResultChaining(t *testing.T) {
	r := OK(testResultProps{ID: 42}).
		Trigger("hxtable:sort").
		Header("Cache-Control", "no-store").
		Status(http.StatusAccepted)

	if r.GetProps().ID != 42 {
		t.Errorf("GetProps().ID = %d, want 42", r.GetProps().ID)
	}
	if r.GetHeaders()["Cache-Control"] != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", r.GetHeaders()["Cache-Control"])
	}
	if r.GetStatus() != http.StatusAccepted {
		t.Errorf("GetStatus() = %d, want %d", r.GetStatus(), http.StatusAccepted)
	}
}
