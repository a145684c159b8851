package handler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/evandrocoan/DebugTools/core"
	"github.com/evandrocoan/DebugTools/formatter"
)

type stubHandler struct {
	entries    []*core.Entry
	handleErr  error
	closeErr   error
	closeCalls int
}

func (s *stubHandler) Handle(entry *core.Entry) error {
	s.entries = append(s.entries, entry)
	return s.handleErr
}

func (s *stubHandler) Close() error {
	s.closeCalls++
	return s.closeErr
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMultiHandler(
		NewWriterHandler(WriterConfig{Writer: &a, Formatter: formatter.NewTextFormatter(formatter.Config{UTC: true})}),
		NewWriterHandler(WriterConfig{Writer: &b, Formatter: formatter.NewTextFormatter(formatter.Config{UTC: true})}),
	)
	defer m.Close()

	if err := m.Handle(testEntry("everywhere")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if a.String() != b.String() {
		t.Errorf("sinks diverged:\n a=%q\n b=%q", a.String(), b.String())
	}
	if !strings.Contains(a.String(), "everywhere") {
		t.Errorf("a = %q, want the message delivered", a.String())
	}
}

func TestMultiHandler_AllChildrenAttemptedOnFailure(t *testing.T) {
	bad := &stubHandler{handleErr: errors.New("sink a broke")}
	good := &stubHandler{}
	m := NewMultiHandler(bad, good)

	err := m.Handle(testEntry("x"))
	if err == nil {
		t.Fatal("expected the child failure to propagate")
	}
	if len(good.entries) != 1 {
		t.Errorf("healthy child received %d entries, want 1", len(good.entries))
	}
}

func TestMultiHandler_CloseCombinesErrors(t *testing.T) {
	a := &stubHandler{closeErr: errors.New("a failed")}
	b := &stubHandler{closeErr: errors.New("b failed")}
	m := NewMultiHandler(a, b)

	err := m.Close()
	if err == nil {
		t.Fatal("expected combined close errors")
	}
	if !strings.Contains(err.Error(), "a failed") || !strings.Contains(err.Error(), "b failed") {
		t.Errorf("err = %v, want both child failures reported", err)
	}
	if a.closeCalls != 1 || b.closeCalls != 1 {
		t.Errorf("close calls = %d/%d, want 1/1", a.closeCalls, b.closeCalls)
	}
}

func TestMultiHandler_RecyclingRequiresAllChildren(t *testing.T) {
	recycling := NewWriterHandler(WriterConfig{Writer: &bytes.Buffer{}})
	defer recycling.Close()

	if m := NewMultiHandler(recycling); !m.CanRecycleEntry() {
		t.Error("all-recycling children should allow recycling")
	}
	// stubHandler does not implement Recycler
	if m := NewMultiHandler(recycling, &stubHandler{}); m.CanRecycleEntry() {
		t.Error("a non-recycling child must disable recycling")
	}
}
