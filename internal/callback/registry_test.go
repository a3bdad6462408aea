package callback

import "testing"

func TestInvokeUnregisteredIsNoOp(t *testing.T) {
	r := NewRegistry()
	v, ok := r.InvokeDuring(PrintResults, nil)
	if ok || v != nil {
		t.Fatalf("expected no-op for unregistered callback, got %v, %v", v, ok)
	}
}

func TestInvokeRegistered(t *testing.T) {
	r := NewRegistry()
	var called bool
	r.Set(ArbSetupRotface, During, func(arg any) any {
		called = true
		return 3
	})

	v, ok := r.InvokeDuring(ArbSetupRotface, nil)
	if !ok || !called {
		t.Fatalf("expected callback to be invoked")
	}
	if v.(int) != 3 {
		t.Fatalf("unexpected return value: %v", v)
	}
}

func TestClearRemovesCallback(t *testing.T) {
	r := NewRegistry()
	r.Set(MenuSet, During, func(arg any) any { return nil })
	r.Clear(MenuSet, During)
	if _, ok := r.Get(MenuSet, During); ok {
		t.Fatalf("expected callback to be cleared")
	}
}
