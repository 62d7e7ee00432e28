package interpret

import "testing"

func TestInterpret_JSONInProse(t *testing.T) {
	raw := `Here you go: {"description":"A short desc","keywords":"a,b,c"} thanks`

	res, ok := Interpret(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if res.Description != "A short desc" {
		t.Errorf("description = %q", res.Description)
	}
	if res.Keywords != "a,b,c" {
		t.Errorf("keywords = %q", res.Keywords)
	}
}

func TestInterpret_FencedJSON(t *testing.T) {
	raw := "```json\n{\"description\": \"desc\", \"keywords\": \"x, y\"}\n```"

	res, ok := Interpret(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if res.Description != "desc" {
		t.Errorf("description = %q", res.Description)
	}
	if res.Keywords != "x, y" {
		t.Errorf("keywords = %q", res.Keywords)
	}
}

func TestInterpret_KeywordList(t *testing.T) {
	raw := `{"description": "d", "keywords": ["cats", "pets", "animals"]}`

	res, ok := Interpret(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if res.Keywords != "cats, pets, animals" {
		t.Errorf("keywords = %q", res.Keywords)
	}
}

func TestInterpret_LooseFallback(t *testing.T) {
	raw := `description: "Great article about cats" keywords: cats, pets, animals`

	res, ok := Interpret(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if res.Description != "Great article about cats" {
		t.Errorf("description = %q", res.Description)
	}
	if res.Keywords == "" {
		t.Error("keywords should be non-empty")
	}
}

func TestInterpret_MissingFieldsDefaultEmpty(t *testing.T) {
	res, ok := Interpret(`{"description": "only desc"}`)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if res.Description != "only desc" {
		t.Errorf("description = %q", res.Description)
	}
	if res.Keywords != "" {
		t.Errorf("keywords = %q, want empty", res.Keywords)
	}
}

func TestInterpret_NothingUsable(t *testing.T) {
	res, ok := Interpret("I could not help with that.")
	if ok {
		t.Errorf("expected ok=false, got result %+v", res)
	}
	if res.Description != "" || res.Keywords != "" {
		t.Errorf("expected empty fields, got %+v", res)
	}
}

func TestInterpret_NeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{"", "{", "}{", "{{{}}}", "description:", "```json\n```"}
	for _, in := range inputs {
		Interpret(in) // must not panic
	}
}
