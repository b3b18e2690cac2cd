package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/project"
)

func TestToProjectListResponse_EmptyEncodesAsArray(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToProjectListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("encoded = %s, want []", b)
	}
}

func TestToActionListResponse_EmptyEncodesAsArray(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToActionListResponse([]action.Action{}))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("encoded = %s, want []", b)
	}
}

func TestToProjectResponse_JSONShape(t *testing.T) {
	t.Parallel()

	p := project.Project{ID: 3, Name: "A", Description: "d", Completed: false}
	b, err := json.Marshal(dto.ToProjectResponse(&p))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	want := `{"id":3,"name":"A","description":"d","completed":false}`
	if string(b) != want {
		t.Errorf("encoded = %s, want %s", b, want)
	}
}

func TestToActionResponse_JSONShape(t *testing.T) {
	t.Parallel()

	a := action.Action{ID: 5, ProjectID: 3, Description: "x", Notes: "y", Completed: true}
	b, err := json.Marshal(dto.ToActionResponse(&a))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	want := `{"id":5,"project_id":3,"description":"x","notes":"y","completed":true}`
	if string(b) != want {
		t.Errorf("encoded = %s, want %s", b, want)
	}
}
