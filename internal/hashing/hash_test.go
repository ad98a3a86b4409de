package hashing

import (
	"testing"

	"github.com/mmrzaf/mockgen/internal/domain"
)

func TestHashMock_TracksRenderedFields(t *testing.T) {
	base := domain.MockDefinition{
		ID:          "user",
		Name:        "User",
		ContentType: domain.ContentTypeJSON,
		Status:      200,
		Body:        `{"id": "${int|1-9}"}`,
	}
	h1, err := HashMock(&base)
	if err != nil {
		t.Fatal(err)
	}

	renamed := base
	renamed.Name = "Someone else"
	renamed.Description = "docs only"
	h2, err := HashMock(&renamed)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Fatal("expected name and description to be ignored")
	}

	changed := base
	changed.Body = `{"id": "${int|1-10}"}`
	h3, err := HashMock(&changed)
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h3 {
		t.Fatal("expected body to affect hash")
	}

	status := base
	status.Status = 404
	h4, err := HashMock(&status)
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h4 {
		t.Fatal("expected status to affect hash")
	}
	if len(h1) != 64 {
		t.Fatalf("expected hex sha256, got %q", h1)
	}
}

func TestDeriveSeed(t *testing.T) {
	if DeriveSeed(1, "a") != DeriveSeed(1, "a") {
		t.Fatal("expected stable seed")
	}
	if DeriveSeed(1, "a") == DeriveSeed(1, "b") {
		t.Fatal("expected key to affect seed")
	}
	if DeriveSeed(1, "a") == DeriveSeed(2, "a") {
		t.Fatal("expected base seed to affect seed")
	}
}
