package export

import (
	"context"
	"errors"
	"testing"
)

type scriptedKeys struct {
	keys    []Key
	err     error
	prompts []string
}

func (s *scriptedKeys) ReadKey(_ context.Context, prompt string) (Key, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return KeyOther, s.err
	}
	if len(s.keys) == 0 {
		return KeyOther, errors.New("no more keys")
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

func TestDecide(t *testing.T) {
	tests := []struct {
		key  Key
		want Decision
	}{
		{KeyConfirm, Export},
		{KeyEscape, Skip},
		{KeyOther, Skip},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := Decide(tt.key); got != tt.want {
				t.Errorf("Decide(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestEngineBatchNeverPrompts(t *testing.T) {
	keys := &scriptedKeys{err: errors.New("should not be called")}
	e := Engine{Interactive: false, Keys: keys}

	d, k, err := e.Decide(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d != Export || k != KeyConfirm {
		t.Errorf("Decide() = %v/%v, want export/confirm", d, k)
	}
	if len(keys.prompts) != 0 {
		t.Errorf("batch mode prompted %d times", len(keys.prompts))
	}
}

func TestEngineInteractive(t *testing.T) {
	keys := &scriptedKeys{keys: []Key{KeyEscape, KeyConfirm, KeyOther}}
	e := Engine{Interactive: true, Keys: keys}

	want := []Decision{Skip, Export, Skip}
	for i, w := range want {
		d, _, err := e.Decide(context.Background(), "row")
		if err != nil {
			t.Fatalf("Decide #%d: %v", i, err)
		}
		if d != w {
			t.Errorf("Decide #%d = %v, want %v", i, d, w)
		}
	}
	if len(keys.prompts) != 3 || keys.prompts[0] != "row" {
		t.Errorf("prompts = %q", keys.prompts)
	}
}

func TestEngineInteractiveErrors(t *testing.T) {
	e := Engine{Interactive: true}
	if _, _, err := e.Decide(context.Background(), "row"); !errors.Is(err, ErrNoKeyReader) {
		t.Errorf("Decide without reader = %v, want ErrNoKeyReader", err)
	}

	boom := errors.New("interrupted")
	e.Keys = &scriptedKeys{err: boom}
	d, _, err := e.Decide(context.Background(), "row")
	if !errors.Is(err, boom) {
		t.Errorf("Decide error = %v, want %v", err, boom)
	}
	if d != Skip {
		t.Errorf("Decide on error = %v, want skip", d)
	}
}
