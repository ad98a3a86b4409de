package mock

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mmrzaf/mockgen/internal/domain"
)

func TestRender_ReplacesPlaceholders(t *testing.T) {
	d := newTestDispatcher(t)
	out, err := d.Render("id=${int|7-8} name=${en|4-5} code=${regex|\\d{3}}")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "id=7 name=") {
		t.Fatalf("unexpected output: %q", out)
	}
	parts := strings.Fields(out)
	if len(parts) != 3 || len(parts[1]) != len("name=")+4 || len(parts[2]) != len("code=")+3 {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderJSON_UnquotesNumbersAndBools(t *testing.T) {
	d := newTestDispatcher(t)
	body := `{"id": "${int|7-8}", "active": "${bool|1}", "name": "${list|[a]}", "note": "id ${int|1-2}"}`
	out, err := d.RenderJSON(body)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("rendered body is not JSON: %v: %s", err, out)
	}
	want := map[string]interface{}{"id": float64(7), "active": true, "name": "a", "note": "id 1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestRenderJSON_EscapesStrings(t *testing.T) {
	d := newTestDispatcher(t)
	out, err := d.RenderJSON(`{"q": "${list|[say "hi"]}"}`)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("rendered body is not JSON: %v: %s", err, out)
	}
	if got["q"] != `say "hi"` {
		t.Fatalf("unexpected value %q", got["q"])
	}
}

func TestRenderJSON_EscapesInsideLongerLiteral(t *testing.T) {
	d := newTestDispatcher(t)
	body := `{"q": "quote: ${list|[say "hi"]}", "p": "dir ${list|[C:\tmp]} end", "n": "say \"${int|1-2}\""}`
	out, err := d.RenderJSON(body)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("rendered body is not JSON: %v: %s", err, out)
	}
	want := map[string]string{"q": `quote: say "hi"`, "p": `dir C:\tmp end`, "n": `say "1"`}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestRenderJSON_AdjacentPlaceholders(t *testing.T) {
	d := newTestDispatcher(t)
	out, err := d.RenderJSON(`["${int|1-2}","${int|3-4}"]`)
	if err != nil {
		t.Fatal(err)
	}
	if out != `[1,3]` {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRender_FailsOnBadPlaceholder(t *testing.T) {
	d := newTestDispatcher(t)
	_, err := d.Render("ok ${int|1-2} bad ${en|9-3}")
	var perr *PlaceholderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlaceholderError, got %v", err)
	}
	if perr.Rule != "en|9-3" {
		t.Fatalf("unexpected rule %q", perr.Rule)
	}
	if !errors.Is(err, domain.ErrParameterFormat) {
		t.Fatalf("expected ErrParameterFormat in chain, got %v", err)
	}
}

func TestRender_LeavesUnclosedPlaceholder(t *testing.T) {
	d := newTestDispatcher(t)
	out, err := d.Render("price ${int|1-2")
	if err != nil {
		t.Fatal(err)
	}
	if out != "price ${int|1-2" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders(`a ${en|1-2} b ${regex|[0-9]{2}} c ${`)
	want := []string{"en|1-2", "regex|[0-9]{2}"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
