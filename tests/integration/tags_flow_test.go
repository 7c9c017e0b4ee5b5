package integration

import (
	"net/http"
	"testing"
)

func TestTagsFlow_CreateAndList(t *testing.T) {
	app := setupApp(t)
	token := app.registerAndLogin(t, "tags@example.com", "testpass123")

	for _, name := range []string{"Gluten free", "Vegan", "Low fat"} {
		rec := app.request("POST", "/recipe/tags", `{"name":"`+name+`"}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create tag %q failed: %d %s", name, rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != name {
			t.Errorf("expected name %q, got %v", name, result["name"])
		}
	}

	rec := app.request("GET", "/recipe/tags", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list tags failed: %d %s", rec.Code, rec.Body.String())
	}
	tags := parseJSONArray(t, rec)
	want := []string{"Vegan", "Low fat", "Gluten free"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for i, name := range want {
		tag := tags[i].(map[string]interface{})
		if tag["name"] != name {
			t.Errorf("position %d: expected %q, got %v", i, name, tag["name"])
		}
	}
}

func TestTagsFlow_ScopedToOwner(t *testing.T) {
	app := setupApp(t)
	token1 := app.registerAndLogin(t, "owner1@example.com", "testpass123")
	token2 := app.registerAndLogin(t, "owner2@example.com", "testpass123")

	rec := app.request("POST", "/recipe/tags", `{"name":"Mine"}`, token1)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create tag failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/recipe/tags", "", token2)
	if rec.Code != http.StatusOK {
		t.Fatalf("list tags failed: %d %s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); body != "[]" {
		t.Errorf("expected empty list for the other user, got %s", body)
	}
}

func TestTagsFlow_InvalidInput(t *testing.T) {
	app := setupApp(t)
	token := app.registerAndLogin(t, "taginput@example.com", "testpass123")

	rec := app.request("POST", "/recipe/tags", `{"name":""}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty name, got %d", rec.Code)
	}

	rec = app.request("POST", "/recipe/tags", `{}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", rec.Code)
	}
}

func TestTagsFlow_RequiresAuth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/recipe/tags", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = app.request("POST", "/recipe/tags", `{"name":"Vegan"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
