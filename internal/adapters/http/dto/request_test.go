package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-actions-service/internal/domain"
)

func boolPtr(v bool) *bool    { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestProjectRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.ProjectRequest
		wantFields []string
	}{
		{
			name: "valid with completed false",
			req:  dto.ProjectRequest{Name: "A", Description: "d", Completed: boolPtr(false)},
		},
		{
			name: "valid with completed true",
			req:  dto.ProjectRequest{Name: "A", Description: "d", Completed: boolPtr(true)},
		},
		{
			name:       "missing completed",
			req:        dto.ProjectRequest{Name: "A", Description: "d"},
			wantFields: []string{"completed"},
		},
		{
			name:       "blank name and description",
			req:        dto.ProjectRequest{Name: " ", Completed: boolPtr(false)},
			wantFields: []string{"name", "description"},
		},
		{
			name:       "empty body",
			req:        dto.ProjectRequest{},
			wantFields: []string{"name", "description", "completed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			if verr.Message != "Please provide name, description, and completed status for the project" {
				t.Errorf("Message = %q", verr.Message)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q: %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestProjectRequest_ToDomain(t *testing.T) {
	t.Parallel()

	req := dto.ProjectRequest{Name: "A", Description: "d", Completed: boolPtr(true)}
	got := req.ToDomain()

	if got.Name != "A" || got.Description != "d" || !got.Completed {
		t.Errorf("ToDomain() = %+v", *got)
	}
	if got.ID != 0 {
		t.Errorf("ToDomain().ID = %d, want 0", got.ID)
	}
}

func TestCreateActionRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.CreateActionRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  dto.CreateActionRequest{ProjectID: int64Ptr(1), Description: "x", Notes: "y"},
		},
		{
			name:       "missing project_id",
			req:        dto.CreateActionRequest{Description: "x", Notes: "y"},
			wantFields: []string{"project_id"},
		},
		{
			name:       "zero project_id",
			req:        dto.CreateActionRequest{ProjectID: int64Ptr(0), Description: "x", Notes: "y"},
			wantFields: []string{"project_id"},
		},
		{
			name:       "missing notes",
			req:        dto.CreateActionRequest{ProjectID: int64Ptr(1), Description: "x"},
			wantFields: []string{"notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			if verr.Message != "Missing required fields: project_id, description, and notes" {
				t.Errorf("Message = %q", verr.Message)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q: %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestCreateActionRequest_ToDomainStartsIncomplete(t *testing.T) {
	t.Parallel()

	req := dto.CreateActionRequest{ProjectID: int64Ptr(4), Description: "x", Notes: "y"}
	got := req.ToDomain()

	if got.ProjectID != 4 || got.Description != "x" || got.Notes != "y" {
		t.Errorf("ToDomain() = %+v", *got)
	}
	if got.Completed {
		t.Error("ToDomain().Completed = true, want false")
	}
}

func TestUpdateActionRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.UpdateActionRequest{ProjectID: int64Ptr(1), Description: "x", Notes: "y", Completed: boolPtr(false)}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	missing := dto.UpdateActionRequest{ProjectID: int64Ptr(1), Description: "x", Notes: "y"}
	err := missing.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
	}
	if verr.Message != "Missing required fields: project_id, description, notes, and completed status" {
		t.Errorf("Message = %q", verr.Message)
	}
	if _, ok := verr.Fields["completed"]; !ok {
		t.Errorf("Fields = %v, want completed", verr.Fields)
	}
}

func TestUpdateActionRequest_ToDomain(t *testing.T) {
	t.Parallel()

	req := dto.UpdateActionRequest{ProjectID: int64Ptr(2), Description: "x", Notes: "y", Completed: boolPtr(true)}
	got := req.ToDomain()

	if got.ProjectID != 2 || !got.Completed {
		t.Errorf("ToDomain() = %+v", *got)
	}
}
