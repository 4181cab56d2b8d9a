package scheduler

import (
	"errors"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
)

// ErrEmptyRoster is returned when no named staff are available for the requested operation
var ErrEmptyRoster = errors.New("no staff on the roster: add staff first")

// ErrTooManyChoreGroups is returned when more chore groups are requested than there are staff
var ErrTooManyChoreGroups = errors.New("more chore groups than staff")

// Warning codes recorded inline in results. They never abort a run.
const (
	WarningInsufficientCertifiedStaff = models.ReasonInsufficientCertifiedStaff
	WarningUnresolvedSeniorCoverage   = "UnresolvedSeniorCoverage"
)
