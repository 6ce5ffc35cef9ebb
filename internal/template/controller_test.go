package template

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"sheet-template-api/internal/audit"
)

func TestTemplateController_CreateAndFetch(t *testing.T) {
	db := newTestDB(t)
	r := setupTemplateRouter(&TemplateService{DB: db})

	w := doJSON(r, http.MethodPost, "/api/templates", sampleRequest("Monthly"))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var created TemplateWithComponents
	decodeJSON(t, w, &created)
	if created.Template.ID == 0 || len(created.Components) != 2 {
		t.Fatalf("unexpected create body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/templates", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var list []Template
	decodeJSON(t, w, &list)
	if len(list) != 1 || list[0].Name != "Monthly" {
		t.Fatalf("unexpected list: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/templates/"+strconv.Itoa(int(created.Template.ID)), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var got TemplateWithComponents
	decodeJSON(t, w, &got)
	if got.Template.Name != "Monthly" || got.Components[0].Key != "sales" {
		t.Fatalf("unexpected get body: %s", w.Body.String())
	}
}

func TestTemplateController_EmptyListIsArray(t *testing.T) {
	r := setupTemplateRouter(&TemplateService{DB: newTestDB(t)})

	w := doJSON(r, http.MethodGet, "/api/templates", nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty array got %d body=%s", w.Code, w.Body.String())
	}
}

func TestTemplateController_Create_ValidationErrors(t *testing.T) {
	r := setupTemplateRouter(&TemplateService{DB: newTestDB(t)})

	cases := []struct {
		name string
		body any
		want string
	}{
		{"malformed json", `{"name":`, "Invalid JSON body"},
		{"missing name", map[string]any{"components": []any{}}, "Template name is required"},
		{"missing components", map[string]any{"name": "T"}, "At least one component is required"},
		{"component without schema", map[string]any{
			"name":       "T",
			"components": []any{map[string]any{"key": "a", "title": "A"}},
		}, "Component at index 0 is missing a schema"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/templates", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
			}
			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Error  string `json:"error"`
					Status int    `json:"status"`
				} `json:"error"`
			}
			decodeJSON(t, w, &body)
			if body.Success || body.Error.Error != tc.want || body.Error.Status != http.StatusBadRequest {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

func TestTemplateController_Create_Duplicate_409(t *testing.T) {
	db := newTestDB(t)
	r := setupTemplateRouter(&TemplateService{DB: db})

	if w := doJSON(r, http.MethodPost, "/api/templates", sampleRequest("Twice")); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	w := doJSON(r, http.MethodPost, "/api/templates", sampleRequest("Twice"))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Error struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	decodeJSON(t, w, &body)
	if !strings.Contains(body.Error.Error, `"Twice" already exists`) || body.Error.Details["error"] != "Duplicate template name" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if n := countRows(t, db, &Template{}); n != 1 {
		t.Fatalf("expected 1 template row got %d", n)
	}
}

func TestTemplateController_Get_InvalidAndMissing(t *testing.T) {
	r := setupTemplateRouter(&TemplateService{DB: newTestDB(t)})

	if w := doJSON(r, http.MethodGet, "/api/templates/abc", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
	w := doJSON(r, http.MethodGet, "/api/templates/99", nil)
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Template not found") {
		t.Fatalf("expected 404 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestTemplateController_Delete(t *testing.T) {
	db := newTestDB(t)
	ts := &TemplateService{DB: db}
	r := setupTemplateRouter(ts)

	res, err := ts.CreateTemplate(sampleRequest("Temp"), "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	path := "/api/templates/" + strconv.Itoa(int(res.Template.ID))

	w := doJSON(r, http.MethodDelete, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if w := doJSON(r, http.MethodGet, path, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, path, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete got %d", w.Code)
	}

	if n := countRows(t, db, &audit.TemplateAuditLog{}); n != 2 {
		t.Fatalf("expected 2 audit rows got %d", n)
	}
}
