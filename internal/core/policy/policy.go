// Package policy decides whether an actor may perform an action. Decisions
// are pure functions of the actor and the action descriptor; callers resolve
// store-dependent facts (profile ids, active assignments) before asking.
package policy

import "github.com/clinicore/clinic-system/internal/core/domain"

// Resource identifies the entity collection an action targets.
type Resource string

const (
	ResourceUsers        Resource = "users"
	ResourceDoctors      Resource = "doctors"
	ResourceAssistants   Resource = "assistants"
	ResourcePatients     Resource = "patients"
	ResourceTreatments   Resource = "treatments"
	ResourceAssignments  Resource = "assignments"
	ResourceApplications Resource = "applications"
	ResourceReports      Resource = "reports"
)

// Operation identifies what is being done to the resource.
type Operation string

const (
	OpList       Operation = "list"
	OpRead       Operation = "read"
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpDeactivate Operation = "deactivate"
	OpApply      Operation = "apply"
)

// Actor is a resolved caller identity. DoctorID / AssistantID are the profile
// ids matching the role, zero when the role owns no such profile.
type Actor struct {
	UserID        uint
	Role          domain.Role
	DoctorID      uint
	AssistantID   uint
	Authenticated bool
}

// Action describes an operation on a resource. OwnerDoctorID is the doctor
// that owns the target (zero when ownership is unknown or not applicable);
// AssistantAssigned reports whether the acting assistant holds an active
// assignment to the target's patient; the caller resolves it from the store.
type Action struct {
	Resource          Resource
	Op                Operation
	OwnerDoctorID     uint
	AssistantAssigned bool
}

// Reason is the stable code attached to every decision.
type Reason string

const (
	ReasonOK              Reason = "ok"
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonRoleMismatch    Reason = "role_mismatch"
	ReasonNotOwner        Reason = "not_owner"
	ReasonNotAssigned     Reason = "not_assigned"
)

// Decision is the outcome of a policy check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err converts a deny decision into the matching domain sentinel. Returns
// nil for an allow.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthenticated:
		return domain.ErrUnauthenticated
	case ReasonNotOwner:
		return domain.ErrNotOwner
	case ReasonNotAssigned:
		return domain.ErrNotAssigned
	default:
		return domain.ErrRoleMismatch
	}
}

var allow = Decision{Allowed: true, Reason: ReasonOK}

func deny(r Reason) Decision { return Decision{Reason: r} }

// Decide evaluates the rules in spec precedence: authentication first, then
// an exhaustive match on the actor's role.
func Decide(actor Actor, action Action) Decision {
	if !actor.Authenticated {
		return deny(ReasonUnauthenticated)
	}

	switch actor.Role {
	case domain.RoleGeneralManager:
		// Managers may perform every management operation and read every report.
		return allow
	case domain.RoleDoctor:
		return decideDoctor(actor, action)
	case domain.RoleAssistant:
		return decideAssistant(action)
	default:
		return deny(ReasonRoleMismatch)
	}
}

func decideDoctor(actor Actor, action Action) Decision {
	switch action.Resource {
	case ResourcePatients, ResourceTreatments:
		// Doctors manage their own patients and treatments. OwnerDoctorID
		// zero means the target has no owner yet (e.g. creating an
		// unassigned patient).
		if action.OwnerDoctorID != 0 && action.OwnerDoctorID != actor.DoctorID {
			return deny(ReasonNotOwner)
		}
		return allow
	case ResourceReports:
		// Only the per-patient treatment report, and only for own patients;
		// the clinic-wide statistics report (OpList) is manager-only.
		if action.Op == OpRead {
			if action.OwnerDoctorID != 0 && action.OwnerDoctorID != actor.DoctorID {
				return deny(ReasonNotOwner)
			}
			return allow
		}
		return deny(ReasonRoleMismatch)
	case ResourceAssignments:
		switch action.Op {
		case OpList, OpCreate, OpUpdate:
			return allow
		}
		return deny(ReasonRoleMismatch)
	case ResourceApplications:
		if action.Op == OpList {
			// Application lists for own treatments.
			if action.OwnerDoctorID != 0 && action.OwnerDoctorID != actor.DoctorID {
				return deny(ReasonNotOwner)
			}
			return allow
		}
		return deny(ReasonRoleMismatch)
	default:
		// User, doctor and assistant management is manager-only.
		return deny(ReasonRoleMismatch)
	}
}

func decideAssistant(action Action) Decision {
	switch action.Resource {
	case ResourceAssignments:
		if action.Op == OpList {
			return allow
		}
	case ResourceApplications:
		switch action.Op {
		case OpList:
			return allow
		case OpApply:
			if !action.AssistantAssigned {
				return deny(ReasonNotAssigned)
			}
			return allow
		}
	case ResourceTreatments:
		switch action.Op {
		case OpList:
			// Lists are scoped to assigned patients by the service.
			return allow
		case OpRead:
			if !action.AssistantAssigned {
				return deny(ReasonNotAssigned)
			}
			return allow
		}
	}
	return deny(ReasonRoleMismatch)
}
