package domain

// Actor is the authenticated identity performing a core operation. The HTTP
// boundary resolves it from the session token before any use case runs.
type Actor struct {
	ID   string
	Role Role
}

// Role represents a workforce member's access level.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployee  Role = "employee"
	RoleManager   Role = "manager"
	RoleHR        Role = "hr"
	RoleFinance   Role = "finance"
	RoleAdmin     Role = "admin"
)

var validRoles = map[Role]bool{
	RoleCandidate: true,
	RoleEmployee:  true,
	RoleManager:   true,
	RoleHR:        true,
	RoleFinance:   true,
	RoleAdmin:     true,
}

// IsValid checks if the role is part of the closed enumeration.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// Operation is a class of mutation checked against the capability table.
type Operation string

const (
	// OpCreateResource defines a new master resource record.
	OpCreateResource Operation = "create-resource"

	// OpRecordMovement appends a movement to a resource ledger.
	OpRecordMovement Operation = "record-movement"

	// OpVerifyLedger runs the ledger consistency check.
	OpVerifyLedger Operation = "verify-ledger"
)

// Capabilities maps each operation to the roles allowed to perform it.
// Recording movements is open to the whole workforce; defining resources is
// restricted to admin and hr.
var Capabilities = map[Operation][]Role{
	OpCreateResource: {RoleAdmin, RoleHR},
	OpRecordMovement: {RoleEmployee, RoleManager, RoleHR, RoleAdmin},
	OpVerifyLedger:   {RoleAdmin, RoleHR, RoleFinance},
}

// Can reports whether the role may perform the operation.
func (r Role) Can(op Operation) bool {
	for _, allowed := range Capabilities[op] {
		if r == allowed {
			return true
		}
	}
	return false
}

// Authorize returns ErrOperationNotAllowed if the actor's role may not
// perform the operation.
func (a Actor) Authorize(op Operation) error {
	if !a.Role.Can(op) {
		return ErrOperationNotAllowed
	}
	return nil
}
