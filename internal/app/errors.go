package app

import (
	"errors"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
)

// Client-facing messages, one per failure mode.
const (
	msgProjectsListFailed   = "The projects information could not be retrieved"
	msgProjectNotFound      = "The project with the specified ID does not exist"
	msgProjectGetFailed     = "The project information could not be retrieved"
	msgProjectCreateFailed  = "There was an error while saving the project to the database"
	msgProjectUpdateFailed  = "The project information could not be modified"
	msgProjectDeleteFailed  = "The project could not be removed"
	msgProjectActionsFailed = "The project actions could not be retrieved"

	msgActionsListFailed   = "Failed to retrieve actions"
	msgActionNotFound      = "Action not found"
	msgActionGetFailed     = "Failed to retrieve the action"
	msgActionProjectAbsent = "Project not found"
	msgActionCreateFailed  = "Failed to create new action"
	msgActionUpdateFailed  = "Failed to update action"
	msgActionDeleteFailed  = "Failed to delete action"
)

// lookupError classifies the result of an existence read. A missing row
// becomes a NotFoundError carrying notFoundMsg; anything else is a storage
// failure described by failedMsg.
func lookupError(err error, notFoundMsg, failedMsg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.NotFoundError{Message: notFoundMsg}
	}
	return &domain.StorageError{Message: failedMsg, Err: err}
}

// storageError wraps a failed mutation. A not-found reported here means the
// row vanished after its existence check and is treated as a storage failure.
func storageError(err error, msg string) error {
	return &domain.StorageError{Message: msg, Err: err}
}
